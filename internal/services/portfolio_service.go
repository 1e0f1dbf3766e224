package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"

	"pjadhav.dev/internal/models"
)

// ErrNotLoaded is wrapped by every error returned while the portfolio
// document is unavailable.
var ErrNotLoaded = errors.New("portfolio data not loaded")

// PortfolioService loads the portfolio document once and serves the cached
// snapshot afterwards. A failed load is not cached, and is not retried until
// the next caller asks.
type PortfolioService struct {
	source Source
	group  singleflight.Group

	mu   sync.RWMutex
	data *models.PortfolioData
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(src Source) *PortfolioService {
	return &PortfolioService{source: src}
}

// Get returns the snapshot, fetching it on first use. Callers must not
// mutate the returned value.
//
// The shared fetch does not inherit the caller's cancellation, so one
// visitor leaving does not fail the load for everyone waiting on it. A
// caller whose own context ends stops waiting with ctx.Err().
func (s *PortfolioService) Get(ctx context.Context) (*models.PortfolioData, error) {
	if data := s.cached(); data != nil {
		return data, nil
	}

	fetchCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan("portfolio", func() (any, error) {
		if data := s.cached(); data != nil {
			return data, nil
		}
		return s.load(fetchCtx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.PortfolioData), nil
	case <-ctx.Done():
		return nil, errors.Join(ErrNotLoaded, ctx.Err())
	}
}

// Loaded reports whether a snapshot is cached
func (s *PortfolioService) Loaded() bool {
	return s.cached() != nil
}

func (s *PortfolioService) cached() *models.PortfolioData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

func (s *PortfolioService) load(ctx context.Context) (*models.PortfolioData, error) {
	raw, err := s.source.Fetch(ctx)
	if err != nil {
		log.Printf("Error fetching portfolio data: %v", err)
		return nil, errors.Join(ErrNotLoaded, err)
	}

	data, err := DecodePortfolio(raw)
	if err != nil {
		log.Printf("Error decoding portfolio data: %v", err)
		return nil, errors.Join(ErrNotLoaded, err)
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return data, nil
}
