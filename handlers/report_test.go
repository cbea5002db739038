// Copyright (c) 2025 Simon Maree.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/simonmaree/feedback-kiosk/models"
	"github.com/simonmaree/feedback-kiosk/testutil"
)

func TestBuildReport(t *testing.T) {
	tests := []struct {
		name     string
		rows     []ReportRow
		want     models.Report
	}{
		{
			name: "empty window yields zero percent, no division by zero",
			rows: []ReportRow{},
			want: models.Report{
				Total: 0, Happy: 0, Sad: 0, HappyPct: 0, SadPct: 0,
				PerQuestion: map[string]models.QuestionTally{},
			},
		},
		{
			name: "mixed ratings",
			rows: []ReportRow{
				{QuestionText: "Service", IsHappy: true},
				{QuestionText: "Service", IsHappy: true},
				{QuestionText: "Service", IsHappy: false},
				{QuestionText: "Prijs", IsHappy: false},
			},
			want: models.Report{
				Total: 4, Happy: 2, Sad: 2, HappyPct: 50, SadPct: 50,
				PerQuestion: map[string]models.QuestionTally{
					"Service": {Happy: 2, Sad: 1},
					"Prijs":   {Happy: 0, Sad: 1},
				},
			},
		},
		{
			name: "duplicate question texts merge into one bucket",
			rows: []ReportRow{
				{QuestionText: "Tevreden?", IsHappy: true},
				{QuestionText: "Tevreden?", IsHappy: false},
			},
			want: models.Report{
				Total: 2, Happy: 1, Sad: 1, HappyPct: 50, SadPct: 50,
				PerQuestion: map[string]models.QuestionTally{
					"Tevreden?": {Happy: 1, Sad: 1},
				},
			},
		},
		{
			name: "percentages round to nearest integer",
			rows: []ReportRow{
				{QuestionText: "Q", IsHappy: true},
				{QuestionText: "Q", IsHappy: true},
				{QuestionText: "Q", IsHappy: false},
			},
			want: models.Report{
				Total: 3, Happy: 2, Sad: 1, HappyPct: 67, SadPct: 33,
				PerQuestion: map[string]models.QuestionTally{
					"Q": {Happy: 2, Sad: 1},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildReport(tt.rows)

			if got.Total != tt.want.Total || got.Happy != tt.want.Happy || got.Sad != tt.want.Sad {
				t.Errorf("Counts: got total=%d happy=%d sad=%d, want total=%d happy=%d sad=%d",
					got.Total, got.Happy, got.Sad, tt.want.Total, tt.want.Happy, tt.want.Sad)
			}
			if got.HappyPct != tt.want.HappyPct || got.SadPct != tt.want.SadPct {
				t.Errorf("Percentages: got %d%%/%d%%, want %d%%/%d%%",
					got.HappyPct, got.SadPct, tt.want.HappyPct, tt.want.SadPct)
			}
			if got.Happy+got.Sad != got.Total {
				t.Errorf("Invariant broken: happy(%d) + sad(%d) != total(%d)", got.Happy, got.Sad, got.Total)
			}
			if len(got.PerQuestion) != len(tt.want.PerQuestion) {
				t.Fatalf("Expected %d question buckets, got %d", len(tt.want.PerQuestion), len(got.PerQuestion))
			}
			for text, want := range tt.want.PerQuestion {
				if got.PerQuestion[text] != want {
					t.Errorf("Bucket %q: got %+v, want %+v", text, got.PerQuestion[text], want)
				}
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		count, total, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
	}

	for _, tt := range tests {
		if got := Percent(tt.count, tt.total); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.count, tt.total, got, tt.want)
		}
	}
}

func TestResolveWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("fixed windows", func(t *testing.T) {
		tests := []struct {
			window   string
			wantDays int
		}{
			{models.Window7d, 7},
			{models.Window30d, 30},
			{models.Window90d, 90},
			{models.Window365d, 365},
		}
		for _, tt := range tests {
			start, end, err := ResolveWindow(tt.window, "", "", now)
			if err != nil {
				t.Fatalf("ResolveWindow(%q) error: %v", tt.window, err)
			}
			if want := now.AddDate(0, 0, -tt.wantDays); !start.Equal(want) {
				t.Errorf("Window %q: expected start %v, got %v", tt.window, want, start)
			}
			if !end.IsZero() {
				t.Errorf("Window %q: expected no upper bound, got %v", tt.window, end)
			}
		}
	})

	t.Run("custom with start and end", func(t *testing.T) {
		start, end, err := ResolveWindow(models.WindowCustom, "2025-01-01", "2025-02-01", now)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if start.Format("2006-01-02") != "2025-01-01" {
			t.Errorf("Unexpected start: %v", start)
		}
		if end.Format("2006-01-02") != "2025-02-01" {
			t.Errorf("Unexpected end: %v", end)
		}
	})

	t.Run("custom without start fails", func(t *testing.T) {
		if _, _, err := ResolveWindow(models.WindowCustom, "", "", now); err == nil {
			t.Error("Expected error for custom window without start")
		}
	})

	t.Run("unknown window fails", func(t *testing.T) {
		if _, _, err := ResolveWindow("14d", "", "", now); err == nil {
			t.Error("Expected error for unknown window")
		}
	})
}

func TestGetReport(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	handler := NewReportHandler(db, getTestConfig())
	q1 := testutil.CreateTestQuestion(t, db, "Service", true, 1)
	q2 := testutil.CreateTestQuestion(t, db, "Prijs", true, 2)

	now := time.Now()

	// 6 recent responses: 4 happy, 2 sad; mixed locations
	testutil.CreateTestResponse(t, db, q1, 1, models.LocationWinkel, now.AddDate(0, 0, -1))
	testutil.CreateTestResponse(t, db, q1, 1, models.LocationWinkel, now.AddDate(0, 0, -2))
	testutil.CreateTestResponse(t, db, q1, -1, models.LocationWinkel, now.AddDate(0, 0, -3))
	testutil.CreateTestResponse(t, db, q2, 1, models.LocationTimmerman, now.AddDate(0, 0, -4))
	testutil.CreateTestResponse(t, db, q2, 1, models.LocationTimmerman, now.AddDate(0, 0, -5))
	testutil.CreateTestResponse(t, db, q2, -1, models.LocationTimmerman, now.AddDate(0, 0, -6))

	// 4 responses outside the 7 day window
	for i := 0; i < 4; i++ {
		testutil.CreateTestResponse(t, db, q1, 1, models.LocationWinkel, now.AddDate(0, 0, -10-i))
	}

	t.Run("7d window excludes old responses", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/admin/report?window=7d", nil, nil)
		w := httptest.NewRecorder()
		handler.GetReport(w, req)

		testutil.AssertStatus(t, w, 200)

		var report models.Report
		testutil.AssertJSON(t, w, &report)
		if report.Total != 6 {
			t.Errorf("Expected 6 responses in the 7d window, got %d", report.Total)
		}
		if report.Happy != 4 || report.Sad != 2 {
			t.Errorf("Expected 4 happy / 2 sad, got %d / %d", report.Happy, report.Sad)
		}
		if report.Happy+report.Sad != report.Total {
			t.Error("happy + sad must equal total")
		}
		if report.HappyPct != 67 || report.SadPct != 33 {
			t.Errorf("Expected 67%%/33%%, got %d%%/%d%%", report.HappyPct, report.SadPct)
		}
	})

	t.Run("location filter excludes other location", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/admin/report?window=7d&location=winkel", nil, nil)
		w := httptest.NewRecorder()
		handler.GetReport(w, req)

		testutil.AssertStatus(t, w, 200)

		var report models.Report
		testutil.AssertJSON(t, w, &report)
		if report.Total != 3 {
			t.Errorf("Expected 3 winkel responses, got %d", report.Total)
		}
		if _, ok := report.PerQuestion["Prijs"]; ok {
			t.Error("timmerman-only question must not appear in a winkel report")
		}
	})

	t.Run("per question buckets", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/admin/report?window=30d", nil, nil)
		w := httptest.NewRecorder()
		handler.GetReport(w, req)

		testutil.AssertStatus(t, w, 200)

		var report models.Report
		testutil.AssertJSON(t, w, &report)
		if got := report.PerQuestion["Prijs"]; got.Happy != 2 || got.Sad != 1 {
			t.Errorf("Prijs bucket: expected 2/1, got %d/%d", got.Happy, got.Sad)
		}
	})

	t.Run("empty window", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/admin/report?window=custom&start=1990-01-01&end=1990-01-02", nil, nil)
		w := httptest.NewRecorder()
		handler.GetReport(w, req)

		testutil.AssertStatus(t, w, 200)

		var report models.Report
		testutil.AssertJSON(t, w, &report)
		if report.Total != 0 || report.HappyPct != 0 || report.SadPct != 0 {
			t.Errorf("Expected empty zero-percent report, got %+v", report)
		}
	})

	t.Run("bad location", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/admin/report?window=7d&location=kantoor", nil, nil)
		w := httptest.NewRecorder()
		handler.GetReport(w, req)
		testutil.AssertStatus(t, w, 400)
	})

	t.Run("bad window", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/admin/report?window=14d", nil, nil)
		w := httptest.NewRecorder()
		handler.GetReport(w, req)
		testutil.AssertStatus(t, w, 400)
	})
}
