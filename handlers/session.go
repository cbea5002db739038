// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/simonmaree/feedback-kiosk/auth"
	"github.com/simonmaree/feedback-kiosk/cliparse"
	"github.com/simonmaree/feedback-kiosk/middleware"
	"github.com/simonmaree/feedback-kiosk/models"
)

type SessionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSessionHandler(db *sql.DB, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{db: db, cfg: cfg}
}

// Login handles POST /admin/login
// Unknown emails and wrong passwords produce the same 401 so the two
// cases cannot be told apart.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}

	var hash string
	err := h.db.QueryRow(`
		SELECT password_hash FROM admin_account WHERE email = $1
	`, email).Scan(&hash)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		slog.Error("failed to query admin account", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(hash, req.Password); err != nil {
		slog.Info("login rejected", "email", email)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := auth.SignSessionToken(email, h.cfg.JWTSecret, time.Now())
	if err != nil {
		slog.Error("failed to sign session token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("admin logged in", "email", email)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token: token,
		Email: email,
	})
}

// Logout handles POST /admin/logout
// Tokens are stateless, so there is nothing to invalidate server-side;
// the client drops the token. Acknowledged regardless so a failed call
// never blocks the client's optimistic logout.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if claims, err := auth.ParseSessionToken(middleware.BearerToken(r), h.cfg.JWTSecret); err == nil {
		slog.Info("admin logged out", "email", claims.Email)
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetSession handles GET /admin/session
// Returns the authenticated projection of the presented token. Always
// 200; an absent or invalid token is just authenticated=false.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.ParseSessionToken(middleware.BearerToken(r), h.cfg.JWTSecret)
	if err != nil {
		middleware.JSONResponse(w, http.StatusOK, models.SessionInfoResponse{Authenticated: false})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SessionInfoResponse{
		Authenticated: true,
		Email:         claims.Email,
	})
}
