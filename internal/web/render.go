// Package web renders the site's HTML pages from embedded templates.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"pjadhav.dev/internal/models"
	"pjadhav.dev/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names
const (
	PageHome      = "home"
	PageAbout     = "about"
	PageSkills    = "skills"
	PageProjects  = "projects"
	PageResume    = "resume"
	PageContact   = "contact"
	PageGitHub    = "github"
	PageInterests = "interests"
	PageError     = "error"
)

var pageNames = []string{
	PageHome, PageAbout, PageSkills, PageProjects, PageResume,
	PageContact, PageGitHub, PageInterests, PageError,
}

// Page is the data passed to every template. View carries page-specific data.
type Page struct {
	Title     string
	Nav       string
	Owner     string
	Portfolio *models.PortfolioData
	View      any
}

// Renderer holds one parsed template set per page
type Renderer struct {
	pages map[string]*template.Template
	now   func() time.Time
}

// NewRenderer parses the layout together with each page template
func NewRenderer() (*Renderer, error) {
	r := &Renderer{
		pages: make(map[string]*template.Template, len(pageNames)),
		now:   time.Now,
	}

	printer := message.NewPrinter(language.English)
	funcs := template.FuncMap{
		"techIcon":  services.TechIcon,
		"hobbyIcon": services.HobbyIcon,
		"count":     func(n int) string { return printer.Sprintf("%d", n) },
		"date":      func(t time.Time) string { return t.Format("Jan 2, 2006") },
		"year": func(y *int) string {
			if y == nil {
				return ""
			}
			return strconv.Itoa(*y)
		},
		"yearsActive": func(since time.Time) int { return yearsActive(r.now(), since) },
	}

	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes the named page into a buffer and writes it with status.
// Nothing is written when execution fails.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// yearsActive counts calendar years between since and now, never negative.
func yearsActive(now, since time.Time) int {
	if since.IsZero() {
		return 0
	}
	if n := now.Year() - since.Year(); n > 0 {
		return n
	}
	return 0
}
