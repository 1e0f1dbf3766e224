package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"pjadhav.dev/internal/config"
	"pjadhav.dev/internal/middleware"
	"pjadhav.dev/internal/services"
	"pjadhav.dev/internal/web"
)

// Dependencies are the services shared by all handlers
type Dependencies struct {
	Portfolio *services.PortfolioService
	GitHub    *services.GitHubService
	Contact   *services.ContactService
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, deps Dependencies) (http.Handler, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)

	// Initialize services
	projectService := services.NewProjectService(deps.Portfolio)

	// Initialize handlers
	pages := NewPageHandler(renderer, deps.Portfolio, deps.GitHub, deps.Contact, cfg.ResumePath)
	portfolioHandler := NewPortfolioHandler(deps.Portfolio)
	projectHandler := NewProjectHandler(projectService)
	githubHandler := NewGitHubHandler(deps.Portfolio, deps.GitHub)
	contactHandler := NewContactHandler(deps.Contact)
	resumeHandler := NewResumeHandler(deps.Portfolio, cfg.ResumePath)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodDelete},
		}).Handler)

		r.Get("/portfolio-data", portfolioHandler.GetPortfolio)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)

		r.Get("/github", githubHandler.GetActivity)

		// Contact draft endpoints
		r.Get("/contact/draft", contactHandler.GetDraft)
		r.Put("/contact/draft", contactHandler.PutDraft)
		r.Delete("/contact/draft", contactHandler.DeleteDraft)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Pages
	r.Get("/", pages.Home)
	r.Get("/about", pages.About)
	r.Get("/skills", pages.Skills)
	r.Get("/projects", pages.Projects)
	r.Get("/resume", pages.Resume)
	r.Get("/github", pages.GitHub)
	r.Get("/interests", pages.Interests)
	r.Get("/contact", pages.Contact)
	r.Post("/contact", pages.SubmitContact)

	// Resume document
	r.Get("/resume/download", resumeHandler.Download)
	r.Get("/resume/view", resumeHandler.View)

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
