package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"pjadhav.dev/internal/models"
	"pjadhav.dev/internal/services"
)

const (
	draftCookie    = "draft_id"
	draftCookieAge = 365 * 24 * 60 * 60
	maxDraftBytes  = 64 << 10
)

// ContactHandler exposes the visitor's contact draft over JSON
type ContactHandler struct {
	contact *services.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(cs *services.ContactService) *ContactHandler {
	return &ContactHandler{contact: cs}
}

// GetDraft handles GET /api/contact/draft
func (h *ContactHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.contact.Load(r.Context(), draftID(r))
	if err != nil {
		log.Printf("Error loading contact draft: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to load draft")
		return
	}
	respondJSON(w, http.StatusOK, draft)
}

// PutDraft handles PUT /api/contact/draft
func (h *ContactHandler) PutDraft(w http.ResponseWriter, r *http.Request) {
	var draft models.ContactDraft
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxDraftBytes)).Decode(&draft); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := ensureDraftID(w, r)
	if err := h.contact.Save(r.Context(), id, draft); err != nil {
		log.Printf("Error saving contact draft: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to save draft")
		return
	}
	respondJSON(w, http.StatusOK, draft)
}

// DeleteDraft handles DELETE /api/contact/draft
func (h *ContactHandler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.contact.Clear(r.Context(), draftID(r)); err != nil {
		log.Printf("Error clearing contact draft: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to clear draft")
		return
	}
	respondJSON(w, http.StatusOK, models.ContactDraft{})
}

// draftID returns the visitor's draft id, or "" when the cookie is absent or malformed.
func draftID(r *http.Request) string {
	c, err := r.Cookie(draftCookie)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}

// ensureDraftID returns the existing draft id or issues a new one.
func ensureDraftID(w http.ResponseWriter, r *http.Request) string {
	if id := draftID(r); id != "" {
		return id
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     draftCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   draftCookieAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
