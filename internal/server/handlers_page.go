package server

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/renz/portfolio/internal/sections"
	"github.com/renz/portfolio/internal/theme"
	"github.com/renz/portfolio/internal/types"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTemplate = "page.html"

// navItem is one in-page navigation link.
type navItem struct {
	ID     sections.Section
	Label  string
	Anchor string
	Active bool
}

// notice is the transient notification shown after a contact submission.
type notice struct {
	Message string
	OK      bool
}

// contactFields names the contact form inputs.
type contactFields struct {
	Name    string
	Email   string
	Subject string
	Message string
}

var contactInputs = contactFields{
	Name:    types.FieldName,
	Email:   types.FieldEmail,
	Subject: types.FieldSubject,
	Message: types.FieldMessage,
}

// pageData is everything the page template renders.
type pageData struct {
	Portfolio   *types.Portfolio
	Nav         []navItem
	Active      sections.Section
	Theme       theme.Theme
	ThemeSource string
	ThemeClass  string
	FormToken   string
	FormField   string
	Fields      contactFields
	Form        types.ContactMessage
	Notice      *notice
	Year        int
}

func parsePageTemplate() (*template.Template, error) {
	return template.New(pageTemplate).Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(templateFS, "templates/*.html")
}

// handlePage renders the single-page portfolio. ?section= preselects the active link.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	active := sections.Home
	if id := r.URL.Query().Get("section"); id != "" {
		if sec, err := sections.Parse(id); err == nil {
			active = sec
		}
	}
	s.renderPage(w, r, http.StatusOK, active, types.ContactMessage{}, nil)
}

// renderPage writes the page with a fresh form token.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, active sections.Section, form types.ContactMessage, n *notice) {
	advertiseColorSchemeHint(w)

	token, err := s.tokens.Generate()
	if err != nil {
		s.logger.Error("failed to issue form token", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := theme.Resolve(s.themeStore(w, r), clientHint{r: r})
	data := pageData{
		Portfolio:   s.portfolio,
		Nav:         navigation(active),
		Active:      active,
		Theme:       res.Theme,
		ThemeSource: res.Source,
		ThemeClass:  res.Theme.DocumentClass(),
		FormToken:   token,
		FormField:   formTokenField,
		Fields:      contactInputs,
		Form:        form,
		Notice:      n,
		Year:        time.Now().Year(),
	}

	var buf bytes.Buffer
	if err := s.page.ExecuteTemplate(&buf, pageTemplate, data); err != nil {
		s.logger.Error("failed to render page", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Debug("failed to write page", zap.Error(err))
	}
}

func navigation(active sections.Section) []navItem {
	all := sections.All()
	items := make([]navItem, 0, len(all))
	for _, sec := range all {
		items = append(items, navItem{
			ID:     sec,
			Label:  sections.Label(sec),
			Anchor: sections.Anchor(sec),
			Active: sec == active,
		})
	}
	return items
}
