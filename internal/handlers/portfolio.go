package handlers

import (
	"net/http"

	"pjadhav.dev/internal/services"
)

const errLoadingPortfolio = "Error loading portfolio data"

// PortfolioHandler serves the local data endpoint
type PortfolioHandler struct {
	portfolio *services.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(ps *services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolio: ps}
}

// GetPortfolio handles GET /api/portfolio-data
func (h *PortfolioHandler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	data, err := h.portfolio.Get(r.Context())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, errLoadingPortfolio)
		return
	}
	respondJSON(w, http.StatusOK, data)
}
