package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmendezv/fiado/internal/auth"
	"github.com/dmendezv/fiado/internal/config"
	"github.com/dmendezv/fiado/internal/credit"
	"github.com/dmendezv/fiado/internal/credit/jsonstore"
	creditStore "github.com/dmendezv/fiado/internal/credit/store"
	"github.com/dmendezv/fiado/internal/database"
	"github.com/dmendezv/fiado/internal/export"
	fiadoHttp "github.com/dmendezv/fiado/internal/http"
	creditHandler "github.com/dmendezv/fiado/internal/http/credit"
	exportHandler "github.com/dmendezv/fiado/internal/http/export"
	importHandler "github.com/dmendezv/fiado/internal/http/importcsv"
	loginHandler "github.com/dmendezv/fiado/internal/http/login"
	"github.com/dmendezv/fiado/internal/importer"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	repo, cleanup, err := openRepository(cfg)
	if err != nil {
		slog.Error("failed to open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	var (
		creditService = credit.NewService(repo)
		importService = importer.NewService()
		exportService = export.NewService(creditService)
		authService   = auth.NewService(cfg.Auth.AccessCode, cfg.Auth.Secret, cfg.Auth.TokenTTL)
	)

	var (
		creditH = creditHandler.NewHandler(creditService)
		importH = importHandler.NewHandler(importService, creditService)
		exportH = exportHandler.NewHandler(exportService)
		loginH  = loginHandler.NewHandler(authService)
	)

	router := fiadoHttp.New(authService, creditH, importH, exportH, loginH, cfg.CORS.AllowedOrigins)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "storage", cfg.Storage.Driver)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func openRepository(cfg *config.Config) (credit.Repository, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageFile:
		store, err := jsonstore.Open(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}

		return store, func() {}, nil

	case config.StoragePostgres:
		db, err := database.New(cfg.ConnectionString())
		if err != nil {
			return nil, nil, err
		}

		return creditStore.New(db), func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}
