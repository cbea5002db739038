// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/simonmaree/feedback-kiosk/cliparse"
	"github.com/simonmaree/feedback-kiosk/middleware"
	"github.com/simonmaree/feedback-kiosk/models"
)

type ReportHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewReportHandler(db *sql.DB, cfg cliparse.Config) *ReportHandler {
	return &ReportHandler{db: db, cfg: cfg}
}

// ReportRow is one response joined with its question text, the input to
// the aggregation.
type ReportRow struct {
	QuestionText string
	IsHappy      bool
}

// GetReport handles GET /admin/report
// Query params: window (7d|30d|90d|365d|custom), location
// (all|winkel|timmerman), and start/end (RFC 3339 dates) for custom.
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	window := r.URL.Query().Get("window")
	if window == "" {
		window = models.Window30d
	}
	location := r.URL.Query().Get("location")
	if location == "" {
		location = "all"
	}
	if location != "all" && !models.ValidLocation(location) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "location must be all, winkel or timmerman")
		return
	}

	start, end, err := ResolveWindow(window, r.URL.Query().Get("start"), r.URL.Query().Get("end"), time.Now())
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := queryReportRows(h.db, start, end, location)
	if err != nil {
		slog.Error("failed to query report rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, BuildReport(rows))
}

// ResolveWindow converts a window name into an absolute inclusive range.
// end is zero for the fixed windows (no upper bound); for custom, start
// is required and end is optional.
func ResolveWindow(window, startStr, endStr string, now time.Time) (start, end time.Time, err error) {
	switch window {
	case models.Window7d:
		return now.AddDate(0, 0, -7), time.Time{}, nil
	case models.Window30d:
		return now.AddDate(0, 0, -30), time.Time{}, nil
	case models.Window90d:
		return now.AddDate(0, 0, -90), time.Time{}, nil
	case models.Window365d:
		return now.AddDate(0, 0, -365), time.Time{}, nil
	case models.WindowCustom:
		if startStr == "" {
			return time.Time{}, time.Time{}, fmt.Errorf("start is required for a custom window")
		}
		start, err = parseDate(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date")
		}
		if endStr != "" {
			end, err = parseDate(endStr)
			if err != nil {
				return time.Time{}, time.Time{}, fmt.Errorf("invalid end date")
			}
		}
		return start, end, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown window %q", window)
	}
}

// parseDate accepts RFC 3339 timestamps or plain dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// BuildReport rolls the filtered rows up into totals, percentages, and
// per-question tallies. Grouping is by question text, not ID: questions
// sharing the exact same text merge into one bucket.
func BuildReport(rows []ReportRow) models.Report {
	report := models.Report{
		PerQuestion: map[string]models.QuestionTally{},
	}

	for _, row := range rows {
		report.Total++
		tally := report.PerQuestion[row.QuestionText]
		if row.IsHappy {
			report.Happy++
			tally.Happy++
		} else {
			tally.Sad++
		}
		report.PerQuestion[row.QuestionText] = tally
	}

	report.Sad = report.Total - report.Happy
	report.HappyPct = Percent(report.Happy, report.Total)
	report.SadPct = Percent(report.Sad, report.Total)

	return report
}

// Percent returns round(100 * count / total). Zero total is defined as
// zero percent, never a division by zero.
func Percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(count) / float64(total)))
}

// queryReportRows fetches responses within the window, joined with their
// question text, optionally filtered by location.
func queryReportRows(db *sql.DB, start, end time.Time, location string) ([]ReportRow, error) {
	query := `
		SELECT COALESCE(q.question_text, ''), r.is_happy
		FROM feedback_response r
		LEFT JOIN feedback_question q ON q.id = r.question_id
		WHERE r.created_at >= $1
	`
	args := []interface{}{start}

	if !end.IsZero() {
		args = append(args, end)
		query += fmt.Sprintf(" AND r.created_at <= $%d", len(args))
	}
	if location != "all" {
		args = append(args, location)
		query += fmt.Sprintf(" AND r.response_type = $%d", len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []ReportRow{}
	for rows.Next() {
		var row ReportRow
		if err := rows.Scan(&row.QuestionText, &row.IsHappy); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	return result, rows.Err()
}
