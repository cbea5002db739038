package models

import "time"

// Location type constants (response_type column)
const (
	LocationWinkel    = "winkel"
	LocationTimmerman = "timmerman"
)

// Report window constants
const (
	Window7d     = "7d"
	Window30d    = "30d"
	Window90d    = "90d"
	Window365d   = "365d"
	WindowCustom = "custom"
)

// Request types

type CreateQuestionRequest struct {
	QuestionText string `json:"question_text"`
}

type UpdateQuestionRequest struct {
	QuestionText string `json:"question_text"`
	Active       bool   `json:"active"`
}

// Ordered question IDs, first ID gets display_order 1
type CommitOrderRequest struct {
	IDs []int64 `json:"ids"`
}

type SubmitResponseRequest struct {
	QuestionID   int64  `json:"question_id"`
	Rating       int    `json:"rating"`
	ResponseType string `json:"response_type"`
}

type StartKioskSessionRequest struct {
	LocationType string `json:"location_type"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response types

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type SessionInfoResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
}

type StartKioskSessionResponse struct {
	SessionToken string    `json:"session_token"`
	Question     *Question `json:"question,omitempty"`
	Exhausted    bool      `json:"exhausted"`
}

type KioskCurrentResponse struct {
	Question  *Question `json:"question,omitempty"`
	Exhausted bool      `json:"exhausted"`
}

type KioskAdvanceResponse struct {
	Advanced  bool      `json:"advanced"`
	Question  *Question `json:"question,omitempty"`
	Exhausted bool      `json:"exhausted"`
}

type SubmitResponseResponse struct {
	ResponseID int64  `json:"response_id"`
	Message    string `json:"message"`
}

// Domain types

type Question struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"question_text"`
	Active       bool      `json:"active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

type Response struct {
	ID           int64     `json:"id"`
	QuestionID   int64     `json:"question_id"`
	IsHappy      bool      `json:"is_happy"`
	Rating       int       `json:"rating"`
	ResponseType string    `json:"response_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// Admin response browser row: response joined with question text.
// QuestionText is empty when the question was deleted after the fact.
type ResponseWithQuestion struct {
	Response
	QuestionText string `json:"question_text,omitempty"`
	SubmittedAgo string `json:"submitted_ago"`
}

// Aggregation report types

type QuestionTally struct {
	Happy int `json:"happy"`
	Sad   int `json:"sad"`
}

type Report struct {
	Total       int                      `json:"total"`
	Happy       int                      `json:"happy"`
	Sad         int                      `json:"sad"`
	HappyPct    int                      `json:"happy_pct"`
	SadPct      int                      `json:"sad_pct"`
	PerQuestion map[string]QuestionTally `json:"per_question"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ValidLocation reports whether s is a known kiosk location type.
func ValidLocation(s string) bool {
	return s == LocationWinkel || s == LocationTimmerman
}
