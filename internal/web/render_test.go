package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pjadhav.dev/internal/models"
)

func TestNewRendererParsesEveryPage(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	for _, name := range pageNames {
		if _, ok := r.pages[name]; !ok {
			t.Fatalf("page %q not parsed", name)
		}
	}
}

func TestRenderWritesStatusAndTitle(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	rec := httptest.NewRecorder()
	page := Page{
		Title:     "Interests",
		Nav:       "interests",
		Owner:     "Ada",
		Portfolio: &models.PortfolioData{Interests: models.Interests{Hobbies: []string{"Music", "Anime"}}},
	}
	if err := r.Render(rec, http.StatusOK, PageInterests, page); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "<title>Interests · Ada</title>") {
		t.Fatalf("missing title in %s", body)
	}
	if !strings.Contains(body, "icon-music") || !strings.Contains(body, "icon-heart") {
		t.Fatal("expected hobby icons")
	}
	if !strings.Contains(body, `href="/interests" aria-current="page"`) {
		t.Fatal("expected current nav entry")
	}
}

func TestRenderEscapesContent(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	rec := httptest.NewRecorder()
	page := Page{Portfolio: &models.PortfolioData{About: models.About{Intro: "<script>alert(1)</script>"}}}
	if err := r.Render(rec, http.StatusOK, PageAbout, page); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(rec.Body.String(), "<script>alert(1)</script>") {
		t.Fatal("intro was not escaped")
	}
}

func TestRenderErrorPage(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	rec := httptest.NewRecorder()
	if err := r.Render(rec, http.StatusServiceUnavailable, PageError, Page{View: "Error loading portfolio data"}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if !strings.Contains(rec.Body.String(), "Error loading portfolio data") {
		t.Fatal("missing placeholder text")
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("Content-Type = %q", ct)
	}
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	rec := httptest.NewRecorder()
	if err := r.Render(rec, http.StatusOK, "missing", Page{}); err == nil {
		t.Fatal("expected error")
	}
	if rec.Body.Len() != 0 {
		t.Fatal("nothing should be written for an unknown page")
	}
}

func TestYearsActive(t *testing.T) {
	now := time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		since time.Time
		want  int
	}{
		{name: "zero", since: time.Time{}, want: 0},
		{name: "same year", since: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), want: 0},
		{name: "calendar years", since: time.Date(2021, time.December, 31, 0, 0, 0, 0, time.UTC), want: 5},
		{name: "future", since: time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := yearsActive(now, tt.since); got != tt.want {
				t.Fatalf("yearsActive() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRenderGitHubCounters(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	r.now = func() time.Time { return time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC) }

	activity := &models.GitHubActivity{
		Username: "octocat",
		User:     &models.GitHubUser{Login: "octocat", CreatedAt: time.Date(2022, time.May, 2, 0, 0, 0, 0, time.UTC)},
	}
	rec := httptest.NewRecorder()
	view := struct{ Activity *models.GitHubActivity }{Activity: activity}
	if err := r.Render(rec, http.StatusOK, PageGitHub, Page{Portfolio: &models.PortfolioData{}, View: view}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<strong>4+</strong><h3>Years Active</h3>") {
		t.Fatalf("missing years active counter in %s", body)
	}
	if !strings.Contains(body, `src="https://ghchart.rshah.org/409ba5/octocat"`) {
		t.Fatal("missing contributions chart")
	}

	rec = httptest.NewRecorder()
	view.Activity = &models.GitHubActivity{Username: "octocat"}
	if err := r.Render(rec, http.StatusOK, PageGitHub, Page{Portfolio: &models.PortfolioData{}, View: view}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(rec.Body.String(), "<strong>…</strong><h3>Years Active</h3>") {
		t.Fatal("expected placeholder years active counter")
	}
}
