package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pjadhav.dev/internal/config"
	"pjadhav.dev/internal/github"
	"pjadhav.dev/internal/handlers"
	"pjadhav.dev/internal/services"
	"pjadhav.dev/internal/storage/sqlite"
)

func main() {
	log.SetPrefix("[WEB] ")
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := config.ParseFlags(cfg, flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatalf("Failed to parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var source services.Source = services.FileSource{Path: cfg.DataPath}
	if cfg.DataURL != "" {
		source = services.NewHTTPSource(cfg.DataURL)
	}

	client := github.NewClient(
		github.WithBaseURL(cfg.GitHub.APIURL),
		github.WithToken(cfg.GitHub.Token),
		github.WithRepoCount(cfg.GitHub.RepoCount),
	)

	router, err := handlers.SetupRoutes(cfg, handlers.Dependencies{
		Portfolio: services.NewPortfolioService(source),
		GitHub:    services.NewGitHubService(client, cfg.GitHub.Username, cfg.GitHub.CacheTTL),
		Contact:   services.NewContactService(store),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
	return nil
}
