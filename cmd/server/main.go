package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/rmacalintal/studentportal/internal/auth"
	"github.com/rmacalintal/studentportal/internal/storage/sqlite"
	"github.com/rmacalintal/studentportal/internal/web"
	"github.com/rmacalintal/studentportal/pkg/logging"
)

const (
	// Seed credentials for the initial admin account, hashed before storage.
	seedAdminUsername = "admin"
	seedAdminPassword = "password123"

	sessionTTL = 24 * time.Hour
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}
	logging.Setup()

	addr := getEnv("ADDR", ":8080")
	dbPath := getEnv("DB_PATH", "./data/sis.db")
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		slog.Warn("SESSION_SECRET not set, using an insecure development secret")
		sessionSecret = "dev-only-secret"
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", dbPath)

	seedHash, err := auth.HashPassword(seedAdminPassword)
	if err != nil {
		slog.Error("Failed to hash seed credentials", "error", err)
		os.Exit(1)
	}
	if err := store.EnsureSeedAdmin(context.Background(), seedAdminUsername, seedHash); err != nil {
		slog.Error("Failed to seed admin account", "error", err)
		os.Exit(1)
	}

	sessions := auth.NewSessionManager(sessionSecret, sessionTTL)
	server := web.NewServer(store, sessions)

	// h2c allows HTTP/2 without TLS behind a terminating proxy.
	handler := h2c.NewHandler(server.Handler(), &http2.Server{})

	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
