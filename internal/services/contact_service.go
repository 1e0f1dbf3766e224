package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"pjadhav.dev/internal/models"
	"pjadhav.dev/internal/storage"
)

var mobileAgent = regexp.MustCompile(`(?i)Android|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// ComposeLinks are the links a submitted draft opens in the visitor's mail client
type ComposeLinks struct {
	Mailto string `json:"mailto"`
	Gmail  string `json:"gmail,omitempty"`
}

// ContactService manages per-visitor contact drafts
type ContactService struct {
	store storage.DraftStore
}

// NewContactService creates a new ContactService
func NewContactService(store storage.DraftStore) *ContactService {
	return &ContactService{store: store}
}

// Load returns the visitor's draft, or the empty draft when none is saved
func (s *ContactService) Load(ctx context.Context, draftID string) (models.ContactDraft, error) {
	if draftID == "" {
		return models.ContactDraft{}, nil
	}
	draft, err := s.store.GetDraft(ctx, draftID)
	if errors.Is(err, storage.ErrNotFound) {
		return models.ContactDraft{}, nil
	}
	if err != nil {
		return models.ContactDraft{}, fmt.Errorf("load draft: %w", err)
	}
	return draft, nil
}

// Save persists every field of the draft
func (s *ContactService) Save(ctx context.Context, draftID string, draft models.ContactDraft) error {
	if err := s.store.PutDraft(ctx, draftID, draft); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Clear removes the persisted draft
func (s *ContactService) Clear(ctx context.Context, draftID string) error {
	if draftID == "" {
		return nil
	}
	if err := s.store.DeleteDraft(ctx, draftID); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

// Compose builds the mailto link for draft addressed to `to`. Desktop
// visitors also get a Gmail compose link as fallback.
func Compose(draft models.ContactDraft, to string, mobile bool) ComposeLinks {
	subject := encodeComponent("Portfolio Contact from " + draft.Name)
	body := encodeComponent(fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", draft.Name, draft.Email, draft.Message))

	links := ComposeLinks{
		Mailto: fmt.Sprintf("mailto:%s?subject=%s&body=%s", to, subject, body),
	}
	if !mobile {
		links.Gmail = fmt.Sprintf("https://mail.google.com/mail/?view=cm&fs=1&to=%s&su=%s&body=%s", to, subject, body)
	}
	return links
}

// IsMobileUserAgent reports whether the user agent belongs to a phone or tablet
func IsMobileUserAgent(ua string) bool {
	return mobileAgent.MatchString(ua)
}

// encodeComponent percent-encodes s for use in a URI query component,
// spaces included.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
