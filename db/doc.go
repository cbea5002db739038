// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and bootstrap seeding.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - feedback_question: Question text, active flag, admin display order
  - feedback_response: One immutable happy/sad rating per submission
  - admin_account: Admin emails with bcrypt password hashes

# Relationships

	feedback_question 1──* feedback_response (by question_id, unenforced)

feedback_response.question_id carries no foreign key constraint: deleting
a question is a hard delete that must neither cascade to nor be blocked
by its responses. Existence is validated at submit time instead.

# Indexes

Performance indexes on:

  - feedback_question.active
  - feedback_question.display_order
  - feedback_response.question_id
  - feedback_response.created_at
  - feedback_response.response_type
  - admin_account.email (unique)

# Admin Seeding

SeedAdmin inserts the bootstrap admin account when ADMIN_EMAIL and
ADMIN_PASSWORD are configured and the email does not exist yet:

	if err := db.SeedAdmin(conn, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatal(err)
	}

Existing accounts are never overwritten.
*/
package db
