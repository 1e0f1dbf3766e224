package handlers

import (
	"net/http"

	"pjadhav.dev/internal/services"
)

// GitHubHandler serves GitHub activity as JSON
type GitHubHandler struct {
	portfolio *services.PortfolioService
	github    *services.GitHubService
}

// NewGitHubHandler creates a new GitHubHandler
func NewGitHubHandler(ps *services.PortfolioService, gs *services.GitHubService) *GitHubHandler {
	return &GitHubHandler{portfolio: ps, github: gs}
}

// GetActivity handles GET /api/github
func (h *GitHubHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	// The profile only names the account; fall back to config when it is unavailable.
	data, _ := h.portfolio.Get(r.Context())
	username := h.github.ResolveUsername(data)

	activity, err := h.github.Activity(r.Context(), username)
	if err != nil && activity.User == nil && len(activity.Repos) == 0 {
		respondError(w, http.StatusBadGateway, "Error fetching GitHub data")
		return
	}
	respondJSON(w, http.StatusOK, activity)
}
