package handlers

import (
	"log"
	"net/http"

	"pjadhav.dev/internal/models"
	"pjadhav.dev/internal/services"
	"pjadhav.dev/internal/web"
)

// HomeView is the page-specific data of the home page
type HomeView struct {
	UseNickname bool
	ToggleName  string
	Highlight   *models.Education
}

// SkillsView lists the fixed skill categories
type SkillsView struct {
	Categories []services.SkillCategory
}

// ResumeView names the downloadable document
type ResumeView struct {
	FileName string
}

// ContactView carries the visitor's draft and, after a send, the compose links
type ContactView struct {
	Draft  models.ContactDraft
	Links  *services.ComposeLinks
	Mobile bool
}

// GitHubView carries the (possibly partial) GitHub activity
type GitHubView struct {
	Activity *models.GitHubActivity
}

// PageHandler renders the HTML pages
type PageHandler struct {
	renderer   *web.Renderer
	portfolio  *services.PortfolioService
	github     *services.GitHubService
	contact    *services.ContactService
	resumePath string
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(renderer *web.Renderer, ps *services.PortfolioService, gs *services.GitHubService, cs *services.ContactService, resumePath string) *PageHandler {
	return &PageHandler{
		renderer:   renderer,
		portfolio:  ps,
		github:     gs,
		contact:    cs,
		resumePath: resumePath,
	}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	data, ok := h.load(w, r)
	if !ok {
		return
	}

	useNickname := r.URL.Query().Get("as") == "nickname" && data.Profile.Nickname != ""
	view := HomeView{
		UseNickname: useNickname,
		ToggleName:  data.DisplayName(!useNickname),
	}
	if len(data.About.Education) > 0 {
		view.Highlight = &data.About.Education[0]
	}
	h.render(w, http.StatusOK, web.PageHome, web.Page{Portfolio: data, View: view})
}

// About handles GET /about
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	data, ok := h.load(w, r)
	if !ok {
		return
	}
	h.render(w, http.StatusOK, web.PageAbout, web.Page{Title: "About", Nav: "about", Portfolio: data})
}

// Skills handles GET /skills
func (h *PageHandler) Skills(w http.ResponseWriter, r *http.Request) {
	data, ok := h.load(w, r)
	if !ok {
		return
	}
	h.render(w, http.StatusOK, web.PageSkills, web.Page{
		Title:     "Skills",
		Nav:       "skills",
		Portfolio: data,
		View:      SkillsView{Categories: services.SkillCategories()},
	})
}

// Projects handles GET /projects
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	data, ok := h.load(w, r)
	if !ok {
		return
	}
	h.render(w, http.StatusOK, web.PageProjects, web.Page{Title: "Projects", Nav: "projects", Portfolio: data})
}

// Resume handles GET /resume
func (h *PageHandler) Resume(w http.ResponseWriter, r *http.Request) {
	data, ok := h.load(w, r)
	if !ok {
		return
	}
	h.render(w, http.StatusOK, web.PageResume, web.Page{
		Title:     "Resume",
		Nav:       "resume",
		Portfolio: data,
		View:      ResumeView{FileName: resumeFileName(data, h.resumePath)},
	})
}

// Interests handles GET /interests
func (h *PageHandler) Interests(w http.ResponseWriter, r *http.Request) {
	data, ok := h.load(w, r)
	if !ok {
		return
	}
	h.render(w, http.StatusOK, web.PageInterests, web.Page{Title: "Interests", Nav: "interests", Portfolio: data})
}

// GitHub handles GET /github. A failed lookup still renders the page with
// whatever data arrived.
func (h *PageHandler) GitHub(w http.ResponseWriter, r *http.Request) {
	data, ok := h.load(w, r)
	if !ok {
		return
	}

	activity, err := h.github.Activity(r.Context(), h.github.ResolveUsername(data))
	if err != nil {
		log.Printf("Error rendering GitHub activity: %v", err)
	}
	h.render(w, http.StatusOK, web.PageGitHub, web.Page{
		Title:     "GitHub",
		Nav:       "github",
		Portfolio: data,
		View:      GitHubView{Activity: activity},
	})
}

// Contact handles GET /contact
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	data, ok := h.load(w, r)
	if !ok {
		return
	}

	id := ensureDraftID(w, r)
	draft, err := h.contact.Load(r.Context(), id)
	if err != nil {
		log.Printf("Error loading contact draft: %v", err)
	}
	h.renderContact(w, data, ContactView{
		Draft:  draft,
		Mobile: services.IsMobileUserAgent(r.UserAgent()),
	})
}

// SubmitContact handles POST /contact for both the send and erase actions
func (h *PageHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	data, ok := h.load(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	id := ensureDraftID(w, r)
	if r.PostForm.Get("action") == "erase" {
		if err := h.contact.Clear(r.Context(), id); err != nil {
			log.Printf("Error clearing contact draft: %v", err)
		}
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}

	draft := models.ContactDraft{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Message: r.PostForm.Get("message"),
	}
	if err := h.contact.Save(r.Context(), id, draft); err != nil {
		log.Printf("Error saving contact draft: %v", err)
	}

	view := ContactView{Draft: draft, Mobile: services.IsMobileUserAgent(r.UserAgent())}
	if to := data.PrimaryEmail(); to != "" {
		links := services.Compose(draft, to, view.Mobile)
		view.Links = &links
	}
	h.renderContact(w, data, view)
}

func (h *PageHandler) renderContact(w http.ResponseWriter, data *models.PortfolioData, view ContactView) {
	h.render(w, http.StatusOK, web.PageContact, web.Page{
		Title:     "Contact",
		Nav:       "contact",
		Portfolio: data,
		View:      view,
	})
}

// load fetches the portfolio or renders the error placeholder
func (h *PageHandler) load(w http.ResponseWriter, r *http.Request) (*models.PortfolioData, bool) {
	data, err := h.portfolio.Get(r.Context())
	if err != nil {
		h.render(w, http.StatusServiceUnavailable, web.PageError, web.Page{View: errLoadingPortfolio})
		return nil, false
	}
	return data, true
}

func (h *PageHandler) render(w http.ResponseWriter, status int, name string, page web.Page) {
	if page.Owner == "" && page.Portfolio != nil {
		page.Owner = page.Portfolio.Profile.Name
	}
	if err := h.renderer.Render(w, status, name, page); err != nil {
		log.Printf("Error rendering %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
