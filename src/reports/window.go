package reports

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidParameter marks malformed report parameters. Handlers map it to a
// 400 response. Parameters are rejected explicitly rather than coerced to
// defaults: a request saying "month=abc" is a client bug, not month zero.
var ErrInvalidParameter = errors.New("invalid report parameter")

const dayLayout = "2006-01-02"

// Window is a concrete, resolved [Start, End] time range used to bound the
// ledger rows of a report. Both ends are inclusive.
type Window struct {
	Start time.Time
	End   time.Time
}

// SummaryWindow derives optional inclusive bounds from startDate/endDate
// query values ("YYYY-MM-DD"). Either may be empty, leaving that end of the
// window open; both empty means the whole ledger. The end bound covers the
// entire end day.
func SummaryWindow(startDate, endDate string) (start, end *time.Time, err error) {
	if startDate != "" {
		t, perr := time.Parse(dayLayout, startDate)
		if perr != nil {
			return nil, nil, fmt.Errorf("%w: startDate %q is not a valid YYYY-MM-DD date", ErrInvalidParameter, startDate)
		}
		t = t.UTC()
		start = &t
	}
	if endDate != "" {
		t, perr := time.Parse(dayLayout, endDate)
		if perr != nil {
			return nil, nil, fmt.Errorf("%w: endDate %q is not a valid YYYY-MM-DD date", ErrInvalidParameter, endDate)
		}
		t = endOfDay(t.UTC())
		end = &t
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, fmt.Errorf("%w: endDate precedes startDate", ErrInvalidParameter)
	}
	return start, end, nil
}

// MonthWindow resolves the calendar-month window for the given year/month
// query values, defaulting to the current year and month of now. The window
// runs from the first instant of the month through 23:59:59.999 on its last
// day, in now's location, so month length follows the local calendar
// (including leap Februaries).
func MonthWindow(now time.Time, yearStr, monthStr string) (Window, int, int, error) {
	year := now.Year()
	month := int(now.Month())

	if yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil || y < 1 {
			return Window{}, 0, 0, fmt.Errorf("%w: year %q is not a valid year", ErrInvalidParameter, yearStr)
		}
		year = y
	}
	if monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			return Window{}, 0, 0, fmt.Errorf("%w: month %q is not a valid month (1-12)", ErrInvalidParameter, monthStr)
		}
		month = m
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return Window{Start: start, End: end}, year, month, nil
}

// WeekWindow resolves the Sunday-anchored week containing the given date
// ("YYYY-MM-DD", default: today). The window starts on the Sunday on or
// before the date at 00:00:00.000 and ends the following Saturday at
// 23:59:59.999. This is deliberately not an ISO (Monday-anchored) week.
func WeekWindow(now time.Time, dateStr string) (Window, error) {
	loc := now.Location()
	var day time.Time
	if dateStr == "" {
		day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	} else {
		parsed, err := time.ParseInLocation(dayLayout, dateStr, loc)
		if err != nil {
			return Window{}, fmt.Errorf("%w: date %q is not a valid YYYY-MM-DD date", ErrInvalidParameter, dateStr)
		}
		day = parsed
	}

	start := day.AddDate(0, 0, -int(day.Weekday()))
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return Window{Start: start, End: end}, nil
}

// ChartWindow resolves the trailing chart window: the months query value
// (default 6) of calendar months ending at now.
func ChartWindow(now time.Time, monthsStr string) (Window, int, error) {
	months := 6
	if monthsStr != "" {
		m, err := strconv.Atoi(monthsStr)
		if err != nil || m < 1 {
			return Window{}, 0, fmt.Errorf("%w: months %q is not a positive integer", ErrInvalidParameter, monthsStr)
		}
		months = m
	}
	return Window{Start: now.AddDate(0, -months, 0), End: now}, months, nil
}

func endOfDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1).Add(-time.Millisecond)
}
