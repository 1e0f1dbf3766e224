package services

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"pjadhav.dev/internal/models"
)

// GitHubFetcher is the subset of the GitHub client used by GitHubService
type GitHubFetcher interface {
	User(ctx context.Context, username string) (*models.GitHubUser, error)
	Repos(ctx context.Context, username string) ([]models.GitHubRepo, error)
}

// GitHubService serves GitHub activity with a per-username TTL cache
type GitHubService struct {
	client          GitHubFetcher
	defaultUsername string
	ttl             time.Duration
	now             func() time.Time

	mu     sync.Mutex
	cached map[string]*models.GitHubActivity // complete lookups only
}

// NewGitHubService creates a new GitHubService. A ttl <= 0 disables caching.
func NewGitHubService(client GitHubFetcher, defaultUsername string, ttl time.Duration) *GitHubService {
	return &GitHubService{
		client:          client,
		defaultUsername: defaultUsername,
		ttl:             ttl,
		now:             time.Now,
		cached:          make(map[string]*models.GitHubActivity),
	}
}

// ResolveUsername prefers the profile's username over the configured default
func (s *GitHubService) ResolveUsername(data *models.PortfolioData) string {
	if data != nil && data.Profile.GitHubUsername != "" {
		return data.Profile.GitHubUsername
	}
	return s.defaultUsername
}

// Activity fetches the profile and repository list concurrently. When one
// half fails the other is still returned alongside the first error.
func (s *GitHubService) Activity(ctx context.Context, username string) (*models.GitHubActivity, error) {
	if activity := s.lookup(username); activity != nil {
		return activity, nil
	}

	activity := &models.GitHubActivity{Username: username}
	var g errgroup.Group
	g.Go(func() error {
		user, err := s.client.User(ctx, username)
		if err != nil {
			return err
		}
		activity.User = user
		return nil
	})
	g.Go(func() error {
		repos, err := s.client.Repos(ctx, username)
		if err != nil {
			return err
		}
		activity.Repos = repos
		return nil
	})
	err := g.Wait()
	activity.FetchedAt = s.now()

	if err != nil {
		log.Printf("Error fetching GitHub data for %s: %v", username, err)
		return activity, err
	}

	s.store(username, activity)
	return activity, nil
}

func (s *GitHubService) lookup(username string) *models.GitHubActivity {
	if s.ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.cached[username]
	if !ok {
		return nil
	}
	if s.now().Sub(activity.FetchedAt) >= s.ttl {
		delete(s.cached, username)
		return nil
	}
	return activity
}

func (s *GitHubService) store(username string, activity *models.GitHubActivity) {
	if s.ttl <= 0 {
		return
	}
	s.mu.Lock()
	s.cached[username] = activity
	s.mu.Unlock()
}
