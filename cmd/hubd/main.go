package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jezweb/hub/internal/config"
	"github.com/jezweb/hub/internal/hub"
	"github.com/jezweb/hub/internal/postgres"
	"github.com/jezweb/hub/internal/sqlite"
	"github.com/jezweb/hub/internal/store"
	"github.com/jezweb/hub/internal/transport"
)

func main() {
	// No .env is fine; config falls back to the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	docStore, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.DB.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	h := hub.New(docStore, logger)
	router := transport.NewServer(h, logger, cfg.CORS.AllowedOrigins)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("starting server", "addr", addr, "driver", cfg.DB.Driver)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// openStore opens the collection store named by the config driver and
// runs its migrations.
func openStore(ctx context.Context, cfg config.Config) (store.Store, func(), error) {
	switch cfg.DB.Driver {
	case "postgres":
		db, err := postgres.New(ctx, cfg.DB.DSN)
		if err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgres.NewDocumentStore(db), db.Close, nil

	default:
		if err := ensureDBDir(cfg.DB.Path); err != nil {
			return nil, nil, err
		}
		db, err := sqlite.New(cfg.DB.Path)
		if err != nil {
			return nil, nil, err
		}
		if err := db.RunMigrations(); err != nil {
			db.Close()
			return nil, nil, err
		}
		return sqlite.NewDocumentStore(db), func() { _ = db.Close() }, nil
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
