package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/simonmaree/feedback-kiosk/cliparse"
	"github.com/simonmaree/feedback-kiosk/db"
	"github.com/simonmaree/feedback-kiosk/handlers"
	"github.com/simonmaree/feedback-kiosk/middleware"
	"github.com/simonmaree/feedback-kiosk/realtime"
	"github.com/simonmaree/feedback-kiosk/router"
	"github.com/simonmaree/feedback-kiosk/sequencer"
)

func main() {
	var err error

	// Local .env is optional
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Seed the bootstrap admin account when configured
	if err := db.SeedAdmin(dbConn, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		slog.Error("admin seeding failed", "error", err)
		os.Exit(1)
	}

	// Change hub and kiosk sequencer
	hub := realtime.NewHub()
	registry, err := sequencer.NewRegistry(handlers.ActiveQuestions(dbConn))
	if err != nil {
		slog.Error("sequencer init failed", "error", err)
		os.Exit(1)
	}
	registry.Listen(hub)
	defer registry.Close()

	// Create router
	mux := router.NewRouter(dbConn, cfg, hub, registry)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
