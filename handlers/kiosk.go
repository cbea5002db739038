// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/simonmaree/feedback-kiosk/middleware"
	"github.com/simonmaree/feedback-kiosk/models"
	"github.com/simonmaree/feedback-kiosk/sequencer"
)

type KioskHandler struct {
	db       *sql.DB
	registry *sequencer.Registry
}

func NewKioskHandler(db *sql.DB, registry *sequencer.Registry) *KioskHandler {
	return &KioskHandler{db: db, registry: registry}
}

// ActiveQuestions returns the kiosk's question loader: active questions
// ordered oldest-created-first. The sequencer registry is built on it.
func ActiveQuestions(db *sql.DB) sequencer.LoadFunc {
	return func() ([]models.Question, error) {
		return queryQuestions(db, `
			SELECT id, question_text, active, display_order, created_at
			FROM feedback_question
			WHERE active = TRUE
			ORDER BY created_at ASC, id ASC
		`)
	}
}

// ListActiveQuestions handles GET /kiosk/questions
// Public listing of the active subset in kiosk order.
func (h *KioskHandler) ListActiveQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := ActiveQuestions(h.db)()
	if err != nil {
		slog.Error("failed to query active questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, questions)
}

// StartSession handles POST /kiosk/sessions
func (h *KioskHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req models.StartKioskSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !models.ValidLocation(req.LocationType) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "location_type must be winkel or timmerman")
		return
	}

	token, question, exhausted := h.registry.Start(req.LocationType)

	slog.Info("kiosk session started", "location", req.LocationType)

	middleware.JSONResponse(w, http.StatusCreated, models.StartKioskSessionResponse{
		SessionToken: token,
		Question:     question,
		Exhausted:    exhausted,
	})
}

// GetCurrent handles GET /kiosk/sessions/{token}
func (h *KioskHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")

	question, exhausted, err := h.registry.Current(token)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.KioskCurrentResponse{
		Question:  question,
		Exhausted: exhausted,
	})
}

// Advance handles POST /kiosk/sessions/{token}/advance
func (h *KioskHandler) Advance(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")

	advanced, question, exhausted, err := h.registry.Advance(token)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.KioskAdvanceResponse{
		Advanced:  advanced,
		Question:  question,
		Exhausted: exhausted,
	})
}
