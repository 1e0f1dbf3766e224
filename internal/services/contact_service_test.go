package services

import (
	"context"
	"strings"
	"testing"

	"pjadhav.dev/internal/models"
	"pjadhav.dev/internal/storage"
)

type memoryDrafts map[string]models.ContactDraft

func (m memoryDrafts) GetDraft(_ context.Context, id string) (models.ContactDraft, error) {
	d, ok := m[id]
	if !ok {
		return models.ContactDraft{}, storage.ErrNotFound
	}
	return d, nil
}

func (m memoryDrafts) PutDraft(_ context.Context, id string, d models.ContactDraft) error {
	m[id] = d
	return nil
}

func (m memoryDrafts) DeleteDraft(_ context.Context, id string) error {
	delete(m, id)
	return nil
}

func TestContactDraftRoundTrip(t *testing.T) {
	store := memoryDrafts{}
	svc := NewContactService(store)
	ctx := context.Background()

	want := models.ContactDraft{Name: "Ada", Email: "ada@example.com", Message: "Hi"}
	if err := svc.Save(ctx, "v1", want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := svc.Load(ctx, "v1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Fatalf("draft = %+v, want %+v", got, want)
	}

	if err := svc.Clear(ctx, "v1"); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok := store["v1"]; ok {
		t.Fatal("draft still persisted after Clear")
	}
	got, err = svc.Load(ctx, "v1")
	if err != nil {
		t.Fatalf("Load() after clear error = %v", err)
	}
	if got != (models.ContactDraft{}) {
		t.Fatalf("draft after clear = %+v, want empty", got)
	}
}

func TestContactLoadWithoutID(t *testing.T) {
	got, err := NewContactService(memoryDrafts{}).Load(context.Background(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !got.IsEmpty() {
		t.Fatalf("draft = %+v, want empty", got)
	}
}

func TestComposeDesktop(t *testing.T) {
	draft := models.ContactDraft{Name: "Ada", Email: "ada@example.com", Message: "Hello & bye"}
	links := Compose(draft, "me@example.com", false)

	wantMailto := "mailto:me@example.com?subject=Portfolio%20Contact%20from%20Ada" +
		"&body=Name%3A%20Ada%0AEmail%3A%20ada%40example.com%0A%0AMessage%3A%0AHello%20%26%20bye"
	if links.Mailto != wantMailto {
		t.Fatalf("Mailto = %q, want %q", links.Mailto, wantMailto)
	}
	if !strings.HasPrefix(links.Gmail, "https://mail.google.com/mail/?view=cm&fs=1&to=me@example.com&su=Portfolio%20Contact") {
		t.Fatalf("Gmail = %q", links.Gmail)
	}
}

func TestComposeMobileOmitsGmail(t *testing.T) {
	links := Compose(models.ContactDraft{Name: "Ada"}, "me@example.com", true)
	if links.Gmail != "" {
		t.Fatalf("Gmail = %q, want empty", links.Gmail)
	}
}

func TestIsMobileUserAgent(t *testing.T) {
	tests := map[string]bool{
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)":   true,
		"Mozilla/5.0 (Linux; Android 14; Pixel 8)":                 true,
		"Opera/9.80 (J2ME/MIDP; Opera Mini/9.80)":                  true,
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0.0": false,
		"": false,
	}
	for ua, want := range tests {
		if got := IsMobileUserAgent(ua); got != want {
			t.Errorf("IsMobileUserAgent(%q) = %t, want %t", ua, got, want)
		}
	}
}
