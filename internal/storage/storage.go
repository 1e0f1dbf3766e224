// Package storage defines persistence contracts for per-visitor state.
package storage

import (
	"context"
	"errors"

	"pjadhav.dev/internal/models"
)

// ErrNotFound is returned when no record exists for the requested key.
var ErrNotFound = errors.New("record not found")

// DraftStore persists contact form drafts keyed by visitor draft id.
type DraftStore interface {
	GetDraft(ctx context.Context, draftID string) (models.ContactDraft, error)
	PutDraft(ctx context.Context, draftID string, draft models.ContactDraft) error
	DeleteDraft(ctx context.Context, draftID string) error
}
