// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the feedback kiosk API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - QuestionHandler: Admin question CRUD and display ordering
  - ResponseHandler: Kiosk submissions and the admin response browser
  - ReportHandler: Time-windowed aggregation for the dashboard
  - SessionHandler: Admin login, logout, session probe
  - KioskHandler: Public kiosk flow backed by the sequencer registry

Handlers are created via constructor functions:

	questionHandler := handlers.NewQuestionHandler(db, cfg, hub)

Handlers that mutate the questions or responses tables also receive the
realtime hub and broadcast a change event after every successful write.

# Kiosk Flow

Anonymous visitors walk through the active questions one at a time:

	POST /kiosk/sessions                  → StartSession (returns session_token)
	GET  /kiosk/sessions/{token}          → GetCurrent
	POST /kiosk/responses                 → SubmitResponse
	POST /kiosk/sessions/{token}/advance  → Advance

Submissions are never deduplicated: the kiosk is anonymous, a repeated
submit creates a second row.

# Question Ordering

The admin list orders by display_order. Reordering is previewed in memory
(PreviewReorder) and persisted as a whole batch (CommitOrder), which
assigns display_order = position+1 per ID inside one transaction. The
kiosk flow ignores display_order and presents active questions
oldest-created-first.

# Aggregation

The dashboard report is computed in report.go:

	rows, err := queryReportRows(db, start, end, location)
	report := BuildReport(rows)

BuildReport groups by question text (duplicate texts merge) and defines
0% for an empty window instead of dividing by zero.

# Sessions

Admin operations require an Authorization: Bearer token issued by Login.
The middleware package enforces this for every /admin/* route except
login and the session probe.
*/
package handlers
