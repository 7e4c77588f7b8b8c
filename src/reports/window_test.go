package reports

import (
	"errors"
	"testing"
	"time"
)

func TestMonthWindowLeapYear(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)

	win, year, month, err := MonthWindow(now, "2024", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if year != 2024 || month != 2 {
		t.Fatalf("expected 2024-02, got %d-%d", year, month)
	}
	wantStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 2, 29, 23, 59, 59, 999000000, time.UTC)
	if !win.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", win.Start, wantStart)
	}
	if !win.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", win.End, wantEnd)
	}
}

func TestMonthWindowDefaultsToCurrentMonth(t *testing.T) {
	now := time.Date(2023, 11, 5, 8, 0, 0, 0, time.UTC)

	win, year, month, err := MonthWindow(now, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if year != 2023 || month != 11 {
		t.Fatalf("expected 2023-11, got %d-%d", year, month)
	}
	if !win.Start.Equal(time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start %v", win.Start)
	}
	if !win.End.Equal(time.Date(2023, 11, 30, 23, 59, 59, 999000000, time.UTC)) {
		t.Errorf("unexpected end %v", win.End)
	}
}

func TestMonthWindowRejectsMalformedInput(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name  string
		year  string
		month string
	}{
		{"non-numeric year", "abc", "2"},
		{"non-numeric month", "2024", "feb"},
		{"month zero", "2024", "0"},
		{"month thirteen", "2024", "13"},
		{"negative year", "-5", "2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := MonthWindow(now, tc.year, tc.month)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestWeekWindowSundayAnchor(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	// 2024-03-06 is a Wednesday; its week runs Sunday 03-03 .. Saturday 03-09.
	win, err := WeekWindow(now, "2024-03-06")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := win.Start.Format("2006-01-02"); got != "2024-03-03" {
		t.Errorf("week start = %s, want 2024-03-03", got)
	}
	if got := win.End.Format("2006-01-02"); got != "2024-03-09" {
		t.Errorf("week end = %s, want 2024-03-09", got)
	}
	if win.Start.Weekday() != time.Sunday {
		t.Errorf("week start weekday = %v, want Sunday", win.Start.Weekday())
	}
	if h, m, s := win.Start.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("week start not truncated to midnight: %v", win.Start)
	}
	if !win.End.Equal(time.Date(2024, 3, 9, 23, 59, 59, 999000000, time.UTC)) {
		t.Errorf("unexpected week end instant %v", win.End)
	}
}

func TestWeekWindowOnSundayStaysPut(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	win, err := WeekWindow(now, "2024-03-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := win.Start.Format("2006-01-02"); got != "2024-03-03" {
		t.Errorf("week start = %s, want 2024-03-03", got)
	}
}

func TestWeekWindowDefaultsToToday(t *testing.T) {
	// A Wednesday.
	now := time.Date(2024, 3, 6, 15, 45, 0, 0, time.UTC)
	win, err := WeekWindow(now, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := win.Start.Format("2006-01-02"); got != "2024-03-03" {
		t.Errorf("week start = %s, want 2024-03-03", got)
	}
}

func TestWeekWindowRejectsMalformedDate(t *testing.T) {
	now := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	for _, bad := range []string{"06-03-2024", "2024-13-40", "yesterday"} {
		if _, err := WeekWindow(now, bad); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%q: expected ErrInvalidParameter, got %v", bad, err)
		}
	}
}

func TestChartWindowDefaultsToSixMonths(t *testing.T) {
	now := time.Date(2024, 7, 10, 9, 0, 0, 0, time.UTC)

	win, months, err := ChartWindow(now, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if months != 6 {
		t.Errorf("months = %d, want 6", months)
	}
	if !win.Start.Equal(now.AddDate(0, -6, 0)) {
		t.Errorf("start = %v, want %v", win.Start, now.AddDate(0, -6, 0))
	}
	if !win.End.Equal(now) {
		t.Errorf("end = %v, want %v", win.End, now)
	}
}

func TestChartWindowRejectsMalformedMonths(t *testing.T) {
	now := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)
	for _, bad := range []string{"abc", "0", "-3", "1.5"} {
		if _, _, err := ChartWindow(now, bad); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%q: expected ErrInvalidParameter, got %v", bad, err)
		}
	}
}

func TestSummaryWindow(t *testing.T) {
	t.Run("both bounds open", func(t *testing.T) {
		start, end, err := SummaryWindow("", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if start != nil || end != nil {
			t.Fatalf("expected open bounds, got start=%v end=%v", start, end)
		}
	})

	t.Run("end bound covers the whole day", func(t *testing.T) {
		start, end, err := SummaryWindow("2024-01-01", "2024-01-31")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start %v", start)
		}
		if !end.Equal(time.Date(2024, 1, 31, 23, 59, 59, 999000000, time.UTC)) {
			t.Errorf("unexpected end %v", end)
		}
	})

	t.Run("start alone", func(t *testing.T) {
		start, end, err := SummaryWindow("2024-01-01", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if start == nil || end != nil {
			t.Fatalf("expected only start bound, got start=%v end=%v", start, end)
		}
	})

	t.Run("malformed dates rejected", func(t *testing.T) {
		if _, _, err := SummaryWindow("01/01/2024", ""); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("expected ErrInvalidParameter, got %v", err)
		}
		if _, _, err := SummaryWindow("", "soon"); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("expected ErrInvalidParameter, got %v", err)
		}
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		if _, _, err := SummaryWindow("2024-02-01", "2024-01-01"); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("expected ErrInvalidParameter, got %v", err)
		}
	})
}
