package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"pjadhav.dev/internal/models"
	"pjadhav.dev/internal/services"
)

// ResumeHandler serves the resume document byte-for-byte
type ResumeHandler struct {
	portfolio *services.PortfolioService
	path      string
}

// NewResumeHandler creates a new ResumeHandler
func NewResumeHandler(ps *services.PortfolioService, resumePath string) *ResumeHandler {
	return &ResumeHandler{portfolio: ps, path: resumePath}
}

// Download handles GET /resume/download
func (h *ResumeHandler) Download(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.fileName(r)))
	h.serve(w, r)
}

// View handles GET /resume/view, used by the inline preview
func (h *ResumeHandler) View(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", h.fileName(r)))
	h.serve(w, r)
}

func (h *ResumeHandler) serve(w http.ResponseWriter, r *http.Request) {
	f, err := os.Open(h.path)
	if err != nil {
		log.Printf("Error opening resume: %v", err)
		w.Header().Del("Content-Disposition")
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		w.Header().Del("Content-Disposition")
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func (h *ResumeHandler) fileName(r *http.Request) string {
	data, _ := h.portfolio.Get(r.Context())
	return resumeFileName(data, h.path)
}

// resumeFileName prefers the name the profile advertises over the on-disk name.
// data may be nil.
func resumeFileName(data *models.PortfolioData, diskPath string) string {
	if data != nil && data.Resume.PDF != "" {
		return path.Base(data.Resume.PDF)
	}
	return filepath.Base(diskPath)
}
