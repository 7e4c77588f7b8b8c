package models

// Report response shapes. Both the income and expenses sides are always
// populated, with zero totals and empty (never nil) lists when a side has no
// matching transactions. Balance is always derived as income - expenses and
// never stored.

type ReportPeriod struct {
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

type SummaryReport struct {
	TotalIncome   Money        `json:"totalIncome"`
	TotalExpenses Money        `json:"totalExpenses"`
	Balance       Money        `json:"balance"`
	Period        ReportPeriod `json:"period"`
}

type CategoryTotal struct {
	Category string `json:"category"`
	Total    Money  `json:"total"`
	Count    int    `json:"count"`
}

type CategoryBreakdown struct {
	Total      Money           `json:"total"`
	Categories []CategoryTotal `json:"categories"`
}

type MonthlyReport struct {
	Month    int               `json:"month"`
	Year     int               `json:"year"`
	Income   CategoryBreakdown `json:"income"`
	Expenses CategoryBreakdown `json:"expenses"`
	Balance  Money             `json:"balance"`
}

// DailyTotal carries Day as 0=Sunday..6=Saturday, matching the week anchor.
type DailyTotal struct {
	Day   int   `json:"day"`
	Total Money `json:"total"`
	Count int   `json:"count"`
}

type DailyBreakdown struct {
	Total       Money        `json:"total"`
	DailyTotals []DailyTotal `json:"dailyTotals"`
}

type WeeklyReport struct {
	WeekStart string         `json:"weekStart"`
	WeekEnd   string         `json:"weekEnd"`
	Income    DailyBreakdown `json:"income"`
	Expenses  DailyBreakdown `json:"expenses"`
	Balance   Money          `json:"balance"`
}

// ChartPoint is one row of the chart-data series, keyed by "YYYY-MM".
type ChartPoint struct {
	Month    string `json:"month"`
	Income   Money  `json:"income"`
	Expenses Money  `json:"expenses"`
	Balance  Money  `json:"balance"`
}
