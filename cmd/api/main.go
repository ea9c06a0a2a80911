package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"statement_deltas/pkg/api/analyze"
	"statement_deltas/pkg/core/analyzer"
	"statement_deltas/pkg/core/config"
	"statement_deltas/pkg/core/edgar"
	"statement_deltas/pkg/core/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Config] %v", err)
	}
	log.Printf("[Config] port=%d origins=%v db=%t", cfg.Port, cfg.AllowedOrigins, cfg.DatabaseURL != "")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	saver, closeStore := openStore(ctx, cfg)
	defer closeStore()

	cache, err := edgar.NewFilingCache(cfg.CacheDir)
	if err != nil {
		log.Fatalf("[EDGAR] cache: %v", err)
	}
	log.Printf("[EDGAR] filing cache at %s", cache.Dir())
	client := edgar.NewClient(
		edgar.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		edgar.WithUserAgent(cfg.SECUserAgent),
		edgar.WithCache(cache),
	)

	svc := analyzer.NewService(client, saver)
	handler := analyze.NewHandler(svc, analyze.NewMetrics()).WithCache(cache)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handler.Routes(cfg.AllowedOrigins),
	}

	go func() {
		log.Printf("[API] listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[API] %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("[API] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[API] shutdown: %v", err)
	}
}

// openStore picks PostgreSQL when DATABASE_URL is set, else JSON files.
func openStore(ctx context.Context, cfg *config.Config) (store.ReportStore, func()) {
	if cfg.DatabaseURL != "" {
		pool, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("[DB] %v, falling back to file store", err)
		} else {
			repo := store.NewReportRepo(pool)
			if err := repo.EnsureSchema(ctx); err != nil {
				log.Fatalf("[DB] schema: %v", err)
			}
			log.Println("[DB] reports stored in PostgreSQL")
			return repo, repo.Close
		}
	}

	fs, err := store.NewFileStore(cfg.ReportDir)
	if err != nil {
		log.Fatalf("[Store] %v", err)
	}
	log.Printf("[Store] reports stored in %s", cfg.ReportDir)
	return fs, func() {}
}
