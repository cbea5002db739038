// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/simonmaree/feedback-kiosk/cliparse"
	"github.com/simonmaree/feedback-kiosk/middleware"
	"github.com/simonmaree/feedback-kiosk/models"
	"github.com/simonmaree/feedback-kiosk/realtime"
)

type QuestionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	hub *realtime.Hub
}

func NewQuestionHandler(db *sql.DB, cfg cliparse.Config, hub *realtime.Hub) *QuestionHandler {
	return &QuestionHandler{db: db, cfg: cfg, hub: hub}
}

// ListQuestions handles GET /admin/questions
// Returns all questions in admin display order.
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := queryQuestions(h.db, `
		SELECT id, question_text, active, display_order, created_at
		FROM feedback_question
		ORDER BY display_order ASC, id ASC
	`)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, questions)
}

// CreateQuestion handles POST /admin/questions
// New questions are active and appended to the end of the display order.
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if strings.TrimSpace(req.QuestionText) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_text is required")
		return
	}

	var question models.Question
	err := h.db.QueryRow(`
		INSERT INTO feedback_question (question_text, active, display_order)
		VALUES ($1, TRUE, (SELECT COALESCE(MAX(display_order), 0) + 1 FROM feedback_question))
		RETURNING id, question_text, active, display_order, created_at
	`, strings.TrimSpace(req.QuestionText)).Scan(
		&question.ID, &question.QuestionText, &question.Active,
		&question.DisplayOrder, &question.CreatedAt,
	)
	if err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", question.ID)
	h.hub.Broadcast(realtime.Event{Table: realtime.TableQuestions, Event: realtime.EventInsert})

	middleware.JSONResponse(w, http.StatusCreated, question)
}

// UpdateQuestion handles PUT /admin/questions/{id}
// Updates text and active flag only; display_order is never touched here.
func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid question id")
		return
	}

	var req models.UpdateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.QuestionText) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_text is required")
		return
	}

	var question models.Question
	err = h.db.QueryRow(`
		UPDATE feedback_question
		SET question_text = $1, active = $2
		WHERE id = $3
		RETURNING id, question_text, active, display_order, created_at
	`, strings.TrimSpace(req.QuestionText), req.Active, id).Scan(
		&question.ID, &question.QuestionText, &question.Active,
		&question.DisplayOrder, &question.CreatedAt,
	)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to update question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update question")
		return
	}

	slog.Info("question updated", "question_id", id, "active", req.Active)
	h.hub.Broadcast(realtime.Event{Table: realtime.TableQuestions, Event: realtime.EventUpdate})

	middleware.JSONResponse(w, http.StatusOK, question)
}

// DeleteQuestion handles DELETE /admin/questions/{id}
// Hard delete. Responses referencing the question are kept.
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid question id")
		return
	}

	result, err := h.db.Exec(`DELETE FROM feedback_question WHERE id = $1`, id)
	if err != nil {
		slog.Error("failed to delete question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete question")
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	slog.Info("question deleted", "question_id", id)
	h.hub.Broadcast(realtime.Event{Table: realtime.TableQuestions, Event: realtime.EventDelete})

	w.WriteHeader(http.StatusNoContent)
}

// PreviewReorder handles POST /admin/questions/reorder
// Pure in-memory rearrangement of the current admin list; nothing is
// persisted until the client commits the full order.
func (h *QuestionHandler) PreviewReorder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FromIndex int `json:"from_index"`
		ToIndex   int `json:"to_index"`
	}
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	questions, err := queryQuestions(h.db, `
		SELECT id, question_text, active, display_order, created_at
		FROM feedback_question
		ORDER BY display_order ASC, id ASC
	`)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	reordered, ok := Reorder(questions, req.FromIndex, req.ToIndex)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "index out of range")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, reordered)
}

// CommitOrder handles PUT /admin/questions/order
// Assigns display_order = position+1 for every listed ID and persists the
// whole batch in one transaction. Re-listing afterwards returns exactly
// the committed order.
func (h *QuestionHandler) CommitOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CommitOrderRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if len(req.IDs) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "ids is required")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	for position, id := range req.IDs {
		result, err := tx.Exec(`
			UPDATE feedback_question
			SET display_order = $1
			WHERE id = $2
		`, position+1, id)
		if err != nil {
			slog.Error("failed to update display order", "error", err, "question_id", id)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save order")
			return
		}
		affected, _ := result.RowsAffected()
		if affected == 0 {
			middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit order", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save order")
		return
	}

	slog.Info("question order committed", "count", len(req.IDs))
	h.hub.Broadcast(realtime.Event{Table: realtime.TableQuestions, Event: realtime.EventUpdate})

	questions, err := queryQuestions(h.db, `
		SELECT id, question_text, active, display_order, created_at
		FROM feedback_question
		ORDER BY display_order ASC, id ASC
	`)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, questions)
}

// Reorder moves the element at fromIndex to toIndex, shifting the rest.
// Returns a new slice; the input is not modified. ok is false when either
// index is out of range.
func Reorder(questions []models.Question, fromIndex, toIndex int) ([]models.Question, bool) {
	if fromIndex < 0 || fromIndex >= len(questions) || toIndex < 0 || toIndex >= len(questions) {
		return nil, false
	}

	reordered := make([]models.Question, 0, len(questions))
	reordered = append(reordered, questions[:fromIndex]...)
	reordered = append(reordered, questions[fromIndex+1:]...)

	moved := questions[fromIndex]
	reordered = append(reordered[:toIndex], append([]models.Question{moved}, reordered[toIndex:]...)...)

	return reordered, true
}

// queryQuestions runs a question SELECT and scans the rows.
func queryQuestions(db *sql.DB, query string, args ...interface{}) ([]models.Question, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.Active, &q.DisplayOrder, &q.CreatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	return questions, rows.Err()
}
