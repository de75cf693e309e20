package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/renz/portfolio/internal/theme"
	"go.uber.org/zap"
)

// ThemeResponse reports the visitor's theme.
type ThemeResponse struct {
	Theme  theme.Theme `json:"theme"`
	Source string      `json:"source"`
	Class  string      `json:"class"`
}

// handleGetTheme resolves the theme from the cookie, then the OS hint, then the default.
func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	advertiseColorSchemeHint(w)

	res := theme.Resolve(s.themeStore(w, r), clientHint{r: r})
	s.jsonResponse(w, http.StatusOK, ThemeResponse{
		Theme:  res.Theme,
		Source: res.Source,
		Class:  res.Theme.DocumentClass(),
	})
}

const maxToggleBody = 1 << 10

// toggleRequest is the optional body of POST /theme/toggle.
type toggleRequest struct {
	// Current is the theme the page is showing.
	Current string `json:"current"`
}

// handleToggleTheme flips the resolved theme and stores the result.
// HTML form posts are redirected back to the page.
func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	req, err := decodeToggleRequest(w, r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	scheme := displayedScheme{current: req.Current, hint: clientHint{r: r}}
	pref := theme.NewPreference(s.themeStore(w, r), scheme)
	t, err := pref.Toggle()
	if err != nil {
		// The toggle still applies for this response.
		s.logger.Warn("theme not persisted", zap.Error(err))
	}

	if !wantsJSON(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	s.jsonResponse(w, http.StatusOK, ThemeResponse{
		Theme:  t,
		Source: pref.Source(),
		Class:  t.DocumentClass(),
	})
}

// decodeToggleRequest reads the JSON or form-encoded toggle body. An empty body is allowed.
func decodeToggleRequest(w http.ResponseWriter, r *http.Request) (toggleRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxToggleBody)

	var req toggleRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return req, &ErrBadRequest{Cause: err}
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return req, &ErrBadRequest{Cause: err}
	}
	req.Current = r.PostFormValue("current")
	return req, nil
}
