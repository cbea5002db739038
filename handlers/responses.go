// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/simonmaree/feedback-kiosk/cliparse"
	"github.com/simonmaree/feedback-kiosk/middleware"
	"github.com/simonmaree/feedback-kiosk/models"
	"github.com/simonmaree/feedback-kiosk/realtime"
)

type ResponseHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	hub *realtime.Hub
}

func NewResponseHandler(db *sql.DB, cfg cliparse.Config, hub *realtime.Hub) *ResponseHandler {
	return &ResponseHandler{db: db, cfg: cfg, hub: hub}
}

// SubmitResponse handles POST /kiosk/responses
// Always inserts a new row; duplicate submissions create duplicate rows.
// The kiosk is anonymous, there is no submission token to dedup on.
func (h *ResponseHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Rating != 1 && req.Rating != -1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "rating must be 1 or -1")
		return
	}
	if !models.ValidLocation(req.ResponseType) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "response_type must be winkel or timmerman")
		return
	}

	// The response table has no foreign key, so check the question here
	var exists bool
	err := h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM feedback_question WHERE id = $1)
	`, req.QuestionID).Scan(&exists)
	if err != nil {
		slog.Error("failed to check question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	var responseID int64
	err = h.db.QueryRow(`
		INSERT INTO feedback_response (question_id, is_happy, rating, response_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, req.QuestionID, req.Rating > 0, req.Rating, req.ResponseType).Scan(&responseID)
	if err != nil {
		slog.Error("failed to insert response", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit feedback")
		return
	}

	slog.Info("response recorded", "response_id", responseID, "question_id", req.QuestionID, "location", req.ResponseType)
	h.hub.Broadcast(realtime.Event{Table: realtime.TableResponses, Event: realtime.EventInsert})

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponseResponse{
		ResponseID: responseID,
		Message:    "Feedback submitted",
	})
}

// ListResponses handles GET /admin/responses
// Newest first, joined with the question text. Questions deleted after
// the fact show an empty question_text.
func (h *ResponseHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT r.id, r.question_id, r.is_happy, r.rating, r.response_type, r.created_at,
		       COALESCE(q.question_text, '')
		FROM feedback_response r
		LEFT JOIN feedback_question q ON q.id = r.question_id
		ORDER BY r.created_at DESC, r.id DESC
	`)
	if err != nil {
		slog.Error("failed to query responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	responses := []models.ResponseWithQuestion{}
	for rows.Next() {
		var resp models.ResponseWithQuestion
		if err := rows.Scan(
			&resp.ID, &resp.QuestionID, &resp.IsHappy, &resp.Rating,
			&resp.ResponseType, &resp.CreatedAt, &resp.QuestionText,
		); err != nil {
			slog.Error("failed to scan response", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		resp.SubmittedAgo = humanize.Time(resp.CreatedAt)
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read responses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, responses)
}

// DeleteResponse handles DELETE /admin/responses/{id}
func (h *ResponseHandler) DeleteResponse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid response id")
		return
	}

	result, err := h.db.Exec(`DELETE FROM feedback_response WHERE id = $1`, id)
	if err != nil {
		slog.Error("failed to delete response", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete response")
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Response not found")
		return
	}

	slog.Info("response deleted", "response_id", id)
	h.hub.Broadcast(realtime.Event{Table: realtime.TableResponses, Event: realtime.EventDelete})

	w.WriteHeader(http.StatusNoContent)
}
