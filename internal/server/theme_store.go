package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/renz/portfolio/internal/theme"
)

const (
	// prefersColorSchemeHeader is the client hint carrying the OS color scheme.
	prefersColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"
	themeCookieMaxAge        = 365 * 24 * time.Hour
)

// cookieStore persists the theme in a cookie named theme.StorageKey.
type cookieStore struct {
	r      *http.Request
	w      http.ResponseWriter
	secure bool
}

func (s *Server) themeStore(w http.ResponseWriter, r *http.Request) *cookieStore {
	return &cookieStore{r: r, w: w, secure: s.secureCookies}
}

// Load returns the theme stored in the request cookie. Unreadable values count as absent.
func (c *cookieStore) Load() (theme.Theme, bool) {
	cookie, err := c.r.Cookie(theme.StorageKey)
	if err != nil {
		return "", false
	}
	t, err := theme.Parse(cookie.Value)
	if err != nil {
		return "", false
	}
	return t, true
}

// Save sets the theme cookie on the response.
func (c *cookieStore) Save(t theme.Theme) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     theme.StorageKey,
		Value:    t.String(),
		Path:     "/",
		MaxAge:   int(themeCookieMaxAge.Seconds()),
		HttpOnly: false, // read by the page script on toggle
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// clientHint reads the OS color scheme from the Sec-CH-Prefers-Color-Scheme header.
type clientHint struct {
	r *http.Request
}

// PrefersDark reports the hinted scheme. An absent or unrecognized hint is unknown.
func (h clientHint) PrefersDark() (bool, bool) {
	value := strings.Trim(strings.TrimSpace(h.r.Header.Get(prefersColorSchemeHeader)), `"`)
	switch strings.ToLower(value) {
	case "dark":
		return true, true
	case "light":
		return false, true
	default:
		return false, false
	}
}

// displayedScheme reads the OS preference from the theme the page reports showing,
// falling back to the client hint. Pages apply prefers-color-scheme themselves when
// the server rendered without a hint.
type displayedScheme struct {
	current string
	hint    clientHint
}

func (d displayedScheme) PrefersDark() (bool, bool) {
	if t, err := theme.Parse(d.current); err == nil {
		return t == theme.Dark, true
	}
	return d.hint.PrefersDark()
}

// advertiseColorSchemeHint asks browsers to send the color scheme hint. Critical-CH
// makes supporting browsers retry the first request with the hint attached.
func advertiseColorSchemeHint(w http.ResponseWriter) {
	w.Header().Set("Accept-CH", prefersColorSchemeHeader)
	w.Header().Set("Critical-CH", prefersColorSchemeHeader)
	w.Header().Add("Vary", prefersColorSchemeHeader)
}
