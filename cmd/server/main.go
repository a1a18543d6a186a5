package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/diewo77/go-billing/internal/config"
	"github.com/diewo77/go-billing/internal/db"
	"github.com/diewo77/go-billing/internal/handlers"
	"github.com/diewo77/go-billing/internal/metrics"
	"github.com/diewo77/go-billing/internal/persistence"
	"github.com/diewo77/go-billing/internal/storage"
	"github.com/diewo77/go-billing/internal/store"
)

var (
	migrateOnlyFlag = flag.Bool("migrate-only", false, "Run SQL migrations and exit (postgres)")
	seedOnlyFlag    = flag.Bool("seed-only", false, "Load demo data into the configured storage and exit")
)

func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	if *migrateOnlyFlag {
		if persistence.Driver(cfg.Storage.Driver) != persistence.DriverPostgres {
			log.Fatalf("-migrate-only requires STORAGE_DRIVER=postgres, got %q", cfg.Storage.Driver)
		}
		if err := db.RunSQLMigrations(cfg.Database.DSN()); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations completed successfully")
		return
	}

	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	log.Printf("[store] using %s storage, key %q", backend.Driver(), cfg.Storage.Key)

	m := metrics.New()
	st, err := store.Open(ctx, backend,
		store.WithRecentWindow(cfg.App.RecentWindow),
		store.WithRand(store.SeedRand(cfg.App.SeedRandom)),
		store.WithMetrics(m),
	)
	if err != nil {
		log.Fatalf("Failed to load store: %v", err)
	}

	if *seedOnlyFlag || cfg.App.Seed {
		loaded, err := st.LoadSeedData(ctx)
		if err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		if !loaded {
			log.Println("[seed] already seeded, skipping")
		}
		if *seedOnlyFlag {
			log.Println("Seeding completed successfully")
			return
		}
	}

	appHandler := NewApp(st, handlers.NewRouterConfig(st, cfg.Company), m)

	// Create server with config timeouts
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      withLogging(appHandler),
		ReadTimeout:  config.Timeout(cfg.Server.ReadTimeout),
		WriteTimeout: config.Timeout(cfg.Server.WriteTimeout),
		IdleTimeout:  config.Timeout(cfg.Server.IdleTimeout),
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s (dev=%v)", cfg.Server.Port, cfg.App.Dev)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// withLogging adds request logging middleware.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
