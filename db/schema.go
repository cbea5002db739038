// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/simonmaree/feedback-kiosk/auth"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SeedAdmin inserts the bootstrap admin account if the email is not
// already present. Existing accounts are left untouched so a changed
// ADMIN_PASSWORD never silently rewrites a live credential.
func SeedAdmin(db *sql.DB, email, password string) error {
	if email == "" {
		return nil
	}

	var exists bool
	err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM admin_account WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO admin_account (email, password_hash)
		VALUES ($1, $2)
	`, email, hash)
	if err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}

	return nil
}

const schema = `
-- Questions
CREATE TABLE IF NOT EXISTS feedback_question (
    id SERIAL PRIMARY KEY,
    question_text TEXT NOT NULL,
    active BOOLEAN NOT NULL DEFAULT TRUE,
    display_order INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_feedback_question_active ON feedback_question(active);
CREATE INDEX IF NOT EXISTS idx_feedback_question_order ON feedback_question(display_order);

-- Responses
-- question_id is deliberately NOT a foreign key: deleting a question is a
-- hard delete that must neither cascade to nor be blocked by responses.
CREATE TABLE IF NOT EXISTS feedback_response (
    id SERIAL PRIMARY KEY,
    question_id INTEGER NOT NULL,
    is_happy BOOLEAN NOT NULL,
    rating INTEGER NOT NULL CHECK (rating IN (-1, 1)),
    response_type TEXT NOT NULL CHECK (response_type IN ('winkel', 'timmerman')),
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_feedback_response_question ON feedback_response(question_id);
CREATE INDEX IF NOT EXISTS idx_feedback_response_created ON feedback_response(created_at);
CREATE INDEX IF NOT EXISTS idx_feedback_response_type ON feedback_response(response_type);

-- Admin accounts
CREATE TABLE IF NOT EXISTS admin_account (
    id SERIAL PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);
`
