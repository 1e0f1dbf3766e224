package services

import (
	"context"
	"errors"
	"fmt"

	"pjadhav.dev/internal/models"
)

// ErrProjectNotFound is returned when no project matches a slug
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	portfolio *PortfolioService
}

// NewProjectService creates a new ProjectService
func NewProjectService(ps *PortfolioService) *ProjectService {
	return &ProjectService{portfolio: ps}
}

// GetAll returns all projects
func (s *ProjectService) GetAll(ctx context.Context) ([]models.Project, error) {
	data, err := s.portfolio.Get(ctx)
	if err != nil {
		return nil, err
	}
	return data.Projects, nil
}

// GetBySlug returns a specific project by its title slug
func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	projects, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].Slug() == slug {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, slug)
}
