// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateQuestionRequest: question_text
  - UpdateQuestionRequest: question_text, active
  - CommitOrderRequest: ids (ordered question IDs)
  - SubmitResponseRequest: question_id, rating, response_type
  - StartKioskSessionRequest: location_type
  - LoginRequest: email, password

# Response Types

Types for JSON responses:

  - LoginResponse: token, email
  - SessionInfoResponse: authenticated, email
  - StartKioskSessionResponse: session_token, question, exhausted
  - KioskCurrentResponse / KioskAdvanceResponse: sequencer state
  - SubmitResponseResponse: response_id, message
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Question: question text, active flag, display order
  - Response: one immutable happy/sad rating event
  - ResponseWithQuestion: response joined with question text
  - Report: aggregated totals and per-question tallies

# Constants

Location types (response_type column):

	LocationWinkel    = "winkel"
	LocationTimmerman = "timmerman"

Report windows:

	Window7d, Window30d, Window90d, Window365d, WindowCustom
*/
package models
