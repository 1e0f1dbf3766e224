package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Source yields the raw portfolio document
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func(ctx context.Context) ([]byte, error)

// Fetch calls f(ctx)
func (f SourceFunc) Fetch(ctx context.Context) ([]byte, error) {
	return f(ctx)
}

// FileSource reads the document from disk
type FileSource struct {
	Path string
}

// Fetch reads the file
func (s FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	return data, nil
}

// HTTPSource issues a single GET against a data endpoint
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource creates an HTTPSource with a bounded client
func NewHTTPSource(url string) HTTPSource {
	return HTTPSource{URL: url, Client: &http.Client{Timeout: 10 * time.Second}}
}

// Fetch performs the request; any non-2xx status is an error
func (s HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", s.URL, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.URL, err)
	}
	return data, nil
}
