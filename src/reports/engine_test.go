package reports

import (
	"testing"
	"time"

	"github.com/username/centavo/backend/src/models"
)

func tx(typ models.TransactionType, cents int64, category string, date time.Time) models.Transaction {
	return models.Transaction{
		Type:     typ,
		Amount:   models.Money{Cents: cents},
		Category: category,
		Date:     date,
	}
}

func TestSummaryTotals(t *testing.T) {
	day := time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx(models.TypeIncome, 500000, "salary", day),
		tx(models.TypeExpense, 12550, "groceries", day),
		tx(models.TypeExpense, 7999, "transport", day),
		tx(models.TypeIncome, 2501, "interest", day),
	}

	income, expenses := SummaryTotals(txs)
	if income.Cents != 502501 {
		t.Errorf("income = %d cents, want 502501", income.Cents)
	}
	if expenses.Cents != 20549 {
		t.Errorf("expenses = %d cents, want 20549", expenses.Cents)
	}
}

func TestSummaryTotalsEmpty(t *testing.T) {
	income, expenses := SummaryTotals(nil)
	if income.Cents != 0 || expenses.Cents != 0 {
		t.Errorf("expected zero totals, got income=%d expenses=%d", income.Cents, expenses.Cents)
	}
}

func TestGroupByTypeAndCategoryFirstSeenOrder(t *testing.T) {
	day := time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx(models.TypeExpense, 1000, "groceries", day),
		tx(models.TypeExpense, 2000, "transport", day),
		tx(models.TypeIncome, 300000, "salary", day),
		tx(models.TypeExpense, 1500, "groceries", day),
	}

	groups := GroupByTypeAndCategory(txs)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	want := []CategoryGroup{
		{Type: models.TypeExpense, Category: "groceries", Total: models.Money{Cents: 2500}, Count: 2},
		{Type: models.TypeExpense, Category: "transport", Total: models.Money{Cents: 2000}, Count: 1},
		{Type: models.TypeIncome, Category: "salary", Total: models.Money{Cents: 300000}, Count: 1},
	}
	for i, g := range groups {
		if g != want[i] {
			t.Errorf("group[%d] = %+v, want %+v", i, g, want[i])
		}
	}
}

func TestGroupByTypeAndCategorySplitsSameCategoryByType(t *testing.T) {
	day := time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx(models.TypeIncome, 5000, "other", day),
		tx(models.TypeExpense, 3000, "other", day),
	}

	groups := GroupByTypeAndCategory(txs)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Type == groups[1].Type {
		t.Errorf("same category split across types, got %+v", groups)
	}
}

func TestGroupByTypeAndWeekday(t *testing.T) {
	// Sunday 03-03 through Saturday 03-09.
	sun := time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC)
	wed := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)
	sat := time.Date(2024, 3, 9, 9, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx(models.TypeExpense, 1000, "groceries", sun),
		tx(models.TypeExpense, 2000, "groceries", wed),
		tx(models.TypeExpense, 500, "transport", wed),
		tx(models.TypeIncome, 10000, "salary", sat),
	}

	groups := GroupByTypeAndWeekday(txs, time.UTC)
	want := []WeekdayGroup{
		{Type: models.TypeExpense, Day: 0, Total: models.Money{Cents: 1000}, Count: 1},
		{Type: models.TypeExpense, Day: 3, Total: models.Money{Cents: 2500}, Count: 2},
		{Type: models.TypeIncome, Day: 6, Total: models.Money{Cents: 10000}, Count: 1},
	}
	if len(groups) != len(want) {
		t.Fatalf("expected %d groups, got %d: %+v", len(want), len(groups), groups)
	}
	for i, g := range groups {
		if g != want[i] {
			t.Errorf("group[%d] = %+v, want %+v", i, g, want[i])
		}
	}
}

func TestGroupByYearMonthSortedAscending(t *testing.T) {
	txs := []models.Transaction{
		tx(models.TypeExpense, 1000, "groceries", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)),
		tx(models.TypeIncome, 5000, "salary", time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)),
		tx(models.TypeExpense, 2000, "rent", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
		tx(models.TypeExpense, 3000, "groceries", time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)),
	}

	groups := GroupByYearMonth(txs, time.UTC)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d: %+v", len(groups), groups)
	}
	for i := 1; i < len(groups); i++ {
		prev, cur := groups[i-1], groups[i]
		if cur.Year < prev.Year || (cur.Year == prev.Year && cur.Month < prev.Month) {
			t.Fatalf("groups not sorted: %+v before %+v", prev, cur)
		}
	}
	if groups[0].Year != 2023 || groups[0].Month != time.December {
		t.Errorf("first group = %+v, want 2023 December", groups[0])
	}
	last := groups[len(groups)-1]
	if last.Year != 2024 || last.Month != time.February || last.Total.Cents != 4000 {
		t.Errorf("last group = %+v, want 2024 February total 4000", last)
	}
}
