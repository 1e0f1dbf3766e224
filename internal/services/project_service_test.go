package services

import (
	"context"
	"errors"
	"testing"
)

func TestProjectServiceGetBySlug(t *testing.T) {
	ps := NewPortfolioService(SourceFunc(func(context.Context) ([]byte, error) {
		return []byte(samplePortfolio), nil
	}))
	svc := NewProjectService(ps)

	project, err := svc.GetBySlug(context.Background(), "portfolio-site")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if project.Title != "Portfolio Site" {
		t.Fatalf("title = %q", project.Title)
	}

	_, err = svc.GetBySlug(context.Background(), "nope")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("error = %v, want ErrProjectNotFound", err)
	}
}

func TestProjectServicePropagatesLoadError(t *testing.T) {
	ps := NewPortfolioService(SourceFunc(func(context.Context) ([]byte, error) {
		return nil, errors.New("offline")
	}))

	if _, err := NewProjectService(ps).GetAll(context.Background()); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("error = %v, want ErrNotLoaded", err)
	}
}
