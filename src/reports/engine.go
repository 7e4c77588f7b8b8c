package reports

import (
	"sort"
	"time"

	"github.com/username/centavo/backend/src/models"
)

// The aggregation engine folds an already-fetched, user-scoped slice of
// transactions into grouped sums and counts. It is pure and synchronous:
// given the same input it always produces the same output, which is what
// makes repeated report requests byte-identical. Amount invariants (positive,
// exact cents) are guaranteed at write time and trusted here.

// SummaryTotals reduces the slice to one total per transaction type.
func SummaryTotals(txs []models.Transaction) (income, expenses models.Money) {
	for _, t := range txs {
		switch t.Type {
		case models.TypeIncome:
			income = income.Add(t.Amount)
		case models.TypeExpense:
			expenses = expenses.Add(t.Amount)
		}
	}
	return income, expenses
}

// CategoryGroup is one (type, category) bucket with its reduction.
type CategoryGroup struct {
	Type     models.TransactionType
	Category string
	Total    models.Money
	Count    int
}

// GroupByTypeAndCategory buckets transactions by (type, category) and reduces
// each bucket to sum and count. Buckets appear in first-seen input order;
// the shaper preserves that order in the response lists.
func GroupByTypeAndCategory(txs []models.Transaction) []CategoryGroup {
	type key struct {
		typ      models.TransactionType
		category string
	}
	index := make(map[key]int)
	var groups []CategoryGroup
	for _, t := range txs {
		k := key{typ: t.Type, category: t.Category}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, CategoryGroup{Type: t.Type, Category: t.Category})
		}
		groups[i].Total = groups[i].Total.Add(t.Amount)
		groups[i].Count++
	}
	return groups
}

// WeekdayGroup is one (type, day-of-week) bucket. Day runs 0=Sunday through
// 6=Saturday, matching the Sunday-anchored week window.
type WeekdayGroup struct {
	Type  models.TransactionType
	Day   int
	Total models.Money
	Count int
}

// GroupByTypeAndWeekday buckets transactions by (type, weekday). The weekday
// is taken from each row's date evaluated in loc, the calendar the week
// window was resolved against. Buckets appear in first-seen input order.
func GroupByTypeAndWeekday(txs []models.Transaction, loc *time.Location) []WeekdayGroup {
	type key struct {
		typ models.TransactionType
		day int
	}
	index := make(map[key]int)
	var groups []WeekdayGroup
	for _, t := range txs {
		day := int(t.Date.In(loc).Weekday())
		k := key{typ: t.Type, day: day}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, WeekdayGroup{Type: t.Type, Day: day})
		}
		groups[i].Total = groups[i].Total.Add(t.Amount)
		groups[i].Count++
	}
	return groups
}

// MonthGroup is one (year, month, type) bucket.
type MonthGroup struct {
	Year  int
	Month time.Month
	Type  models.TransactionType
	Total models.Money
}

// GroupByYearMonth buckets transactions by (year, month, type), with year and
// month taken from each row's own date evaluated in loc. The result is
// sorted ascending by (year, month); bucket order within a month is the
// first-seen input order.
func GroupByYearMonth(txs []models.Transaction, loc *time.Location) []MonthGroup {
	type key struct {
		year  int
		month time.Month
		typ   models.TransactionType
	}
	index := make(map[key]int)
	var groups []MonthGroup
	for _, t := range txs {
		local := t.Date.In(loc)
		k := key{year: local.Year(), month: local.Month(), typ: t.Type}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, MonthGroup{Year: k.year, Month: k.month, Type: t.Type})
		}
		groups[i].Total = groups[i].Total.Add(t.Amount)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Year != groups[j].Year {
			return groups[i].Year < groups[j].Year
		}
		return groups[i].Month < groups[j].Month
	})
	return groups
}
