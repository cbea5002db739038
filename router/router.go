// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/simonmaree/feedback-kiosk/cliparse"
	"github.com/simonmaree/feedback-kiosk/handlers"
	"github.com/simonmaree/feedback-kiosk/middleware"
	"github.com/simonmaree/feedback-kiosk/realtime"
	"github.com/simonmaree/feedback-kiosk/sequencer"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, hub *realtime.Hub, registry *sequencer.Registry) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(db, cfg, hub)
	responseHandler := handlers.NewResponseHandler(db, cfg, hub)
	reportHandler := handlers.NewReportHandler(db, cfg)
	sessionHandler := handlers.NewSessionHandler(db, cfg)
	kioskHandler := handlers.NewKioskHandler(db, registry)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireSession(cfg.JWTSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Kiosk flow (public)
	mux.HandleFunc("GET /kiosk/questions", middleware.WithLogging(kioskHandler.ListActiveQuestions))
	mux.HandleFunc("POST /kiosk/sessions", middleware.WithLogging(kioskHandler.StartSession))
	mux.HandleFunc("GET /kiosk/sessions/{token}", middleware.WithLogging(kioskHandler.GetCurrent))
	mux.HandleFunc("POST /kiosk/sessions/{token}/advance", middleware.WithLogging(kioskHandler.Advance))
	mux.HandleFunc("POST /kiosk/responses", middleware.WithLogging(responseHandler.SubmitResponse))

	// Realtime change feed (public)
	mux.HandleFunc("GET /ws", hub.ServeWS)

	// Admin auth
	mux.HandleFunc("POST /admin/login", middleware.WithLogging(sessionHandler.Login))
	mux.HandleFunc("POST /admin/logout", middleware.WithLogging(sessionHandler.Logout))
	mux.HandleFunc("GET /admin/session", middleware.WithLogging(sessionHandler.GetSession))

	// Question management (admin, auth-gated)
	mux.HandleFunc("GET /admin/questions", admin(questionHandler.ListQuestions))
	mux.HandleFunc("POST /admin/questions", admin(questionHandler.CreateQuestion))
	mux.HandleFunc("PUT /admin/questions/order", admin(questionHandler.CommitOrder))
	mux.HandleFunc("POST /admin/questions/reorder", admin(questionHandler.PreviewReorder))
	mux.HandleFunc("PUT /admin/questions/{id}", admin(questionHandler.UpdateQuestion))
	mux.HandleFunc("DELETE /admin/questions/{id}", admin(questionHandler.DeleteQuestion))

	// Response browser and dashboard (admin, auth-gated)
	mux.HandleFunc("GET /admin/responses", admin(responseHandler.ListResponses))
	mux.HandleFunc("DELETE /admin/responses/{id}", admin(responseHandler.DeleteResponse))
	mux.HandleFunc("GET /admin/report", admin(reportHandler.GetReport))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("feedback-kiosk API v1"))
	})

	return mux
}
