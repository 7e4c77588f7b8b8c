package reports

import (
	"fmt"

	"github.com/username/centavo/backend/src/models"
)

// The result shaper converts engine output into the fixed response contracts.
// Every shape always carries both the income and expenses side, zero-valued
// when empty, and derives balance as income - expenses.

// ShapeSummary builds the summary response. startDate/endDate echo the raw
// request values and stay null when the corresponding bound was open.
func ShapeSummary(txs []models.Transaction, startDate, endDate string) models.SummaryReport {
	income, expenses := SummaryTotals(txs)
	period := models.ReportPeriod{}
	if startDate != "" {
		period.StartDate = &startDate
	}
	if endDate != "" {
		period.EndDate = &endDate
	}
	return models.SummaryReport{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
		Period:        period,
	}
}

// ShapeMonthly regroups the per-(type, category) buckets under their type,
// keeping the bucket order the grouping stage produced.
func ShapeMonthly(year, month int, groups []CategoryGroup) models.MonthlyReport {
	report := models.MonthlyReport{
		Month:    month,
		Year:     year,
		Income:   models.CategoryBreakdown{Categories: []models.CategoryTotal{}},
		Expenses: models.CategoryBreakdown{Categories: []models.CategoryTotal{}},
	}
	for _, g := range groups {
		row := models.CategoryTotal{Category: g.Category, Total: g.Total, Count: g.Count}
		switch g.Type {
		case models.TypeIncome:
			report.Income.Total = report.Income.Total.Add(g.Total)
			report.Income.Categories = append(report.Income.Categories, row)
		case models.TypeExpense:
			report.Expenses.Total = report.Expenses.Total.Add(g.Total)
			report.Expenses.Categories = append(report.Expenses.Categories, row)
		}
	}
	report.Balance = report.Income.Total.Sub(report.Expenses.Total)
	return report
}

// ShapeWeekly regroups the per-(type, weekday) buckets under their type.
// WeekStart/WeekEnd are formatted in the window's own location.
func ShapeWeekly(win Window, groups []WeekdayGroup) models.WeeklyReport {
	report := models.WeeklyReport{
		WeekStart: win.Start.Format(dayLayout),
		WeekEnd:   win.End.Format(dayLayout),
		Income:    models.DailyBreakdown{DailyTotals: []models.DailyTotal{}},
		Expenses:  models.DailyBreakdown{DailyTotals: []models.DailyTotal{}},
	}
	for _, g := range groups {
		row := models.DailyTotal{Day: g.Day, Total: g.Total, Count: g.Count}
		switch g.Type {
		case models.TypeIncome:
			report.Income.Total = report.Income.Total.Add(g.Total)
			report.Income.DailyTotals = append(report.Income.DailyTotals, row)
		case models.TypeExpense:
			report.Expenses.Total = report.Expenses.Total.Add(g.Total)
			report.Expenses.DailyTotals = append(report.Expenses.DailyTotals, row)
		}
	}
	report.Balance = report.Income.Total.Sub(report.Expenses.Total)
	return report
}

// ShapeChart merges the per-(year, month, type) buckets into one chart row
// per month. The buckets arrive sorted ascending by (year, month), so rows
// come out strictly ascending with no duplicate month keys.
func ShapeChart(groups []MonthGroup) []models.ChartPoint {
	points := []models.ChartPoint{}
	for _, g := range groups {
		key := fmt.Sprintf("%04d-%02d", g.Year, int(g.Month))
		if len(points) == 0 || points[len(points)-1].Month != key {
			points = append(points, models.ChartPoint{Month: key})
		}
		p := &points[len(points)-1]
		switch g.Type {
		case models.TypeIncome:
			p.Income = p.Income.Add(g.Total)
		case models.TypeExpense:
			p.Expenses = p.Expenses.Add(g.Total)
		}
		p.Balance = p.Income.Sub(p.Expenses)
	}
	return points
}
