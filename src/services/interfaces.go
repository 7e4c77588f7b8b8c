package services

import (
	"github.com/username/centavo/backend/src/models"
)

// ReportService computes the time-windowed aggregations served by the report
// endpoints. Query parameters arrive as raw strings and are validated here
// (via the window resolver); malformed values surface as
// reports.ErrInvalidParameter.
type ReportService interface {
	GetSummary(userID int64, startDate, endDate string) (models.SummaryReport, error)
	GetMonthly(userID int64, year, month string) (models.MonthlyReport, error)
	GetWeekly(userID int64, date string) (models.WeeklyReport, error)
	GetChartData(userID int64, months string) ([]models.ChartPoint, error)

	// InvalidateUserCache drops every cached report for the user. Called
	// on any write to that user's ledger.
	InvalidateUserCache(userID int64)
}

// EmailService sends account emails.
type EmailService interface {
	SendVerificationEmail(toEmail, username, token string) error
}
