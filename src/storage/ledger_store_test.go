package storage

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/username/centavo/backend/src/models"
)

func newTestStore(t *testing.T) LedgerStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			type TEXT NOT NULL,
			amount_cents INTEGER NOT NULL,
			category TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			date TEXT NOT NULL
		)`)
	if err != nil {
		t.Fatalf("creating schema: %v", err)
	}
	return NewSQLiteLedgerStore(db)
}

func seed(t *testing.T, store LedgerStore, userID int64, typ models.TransactionType, cents int64, category string, date time.Time) models.Transaction {
	t.Helper()
	tx := models.Transaction{
		UserID:   userID,
		Type:     typ,
		Amount:   models.Money{Cents: cents},
		Category: category,
		Date:     date,
	}
	if err := store.CreateTransaction(&tx); err != nil {
		t.Fatalf("seeding transaction: %v", err)
	}
	return tx
}

func TestCreateAndGetTransaction(t *testing.T) {
	store := newTestStore(t)
	date := time.Date(2024, 3, 6, 15, 30, 0, 0, time.UTC)
	created := seed(t, store, 7, models.TypeExpense, 1234, "groceries", date)

	if created.ID == 0 {
		t.Fatal("expected an assigned id")
	}

	got, err := store.GetTransactionByID(7, created.ID)
	if err != nil {
		t.Fatalf("GetTransactionByID: %v", err)
	}
	if got.Amount.Cents != 1234 || got.Category != "groceries" || got.Type != models.TypeExpense {
		t.Errorf("unexpected row %+v", got)
	}
	if !got.Date.Equal(date) {
		t.Errorf("date = %v, want %v (stored dates must round-trip)", got.Date, date)
	}

	// Another user cannot see the row.
	if _, err := store.GetTransactionByID(8, created.ID); !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound for another user, got %v", err)
	}
}

func TestUpdateTransactionScopedToOwner(t *testing.T) {
	store := newTestStore(t)
	tx := seed(t, store, 7, models.TypeExpense, 1000, "groceries", time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC))

	tx.Amount = models.Money{Cents: 2550}
	if err := store.UpdateTransaction(&tx); err != nil {
		t.Fatalf("UpdateTransaction: %v", err)
	}
	got, err := store.GetTransactionByID(7, tx.ID)
	if err != nil {
		t.Fatalf("GetTransactionByID: %v", err)
	}
	if got.Amount.Cents != 2550 {
		t.Errorf("amount = %d, want 2550", got.Amount.Cents)
	}

	stolen := tx
	stolen.UserID = 8
	stolen.Amount = models.Money{Cents: 1}
	if err := store.UpdateTransaction(&stolen); !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound for another user, got %v", err)
	}
}

func TestDeleteTransaction(t *testing.T) {
	store := newTestStore(t)
	tx := seed(t, store, 7, models.TypeExpense, 1000, "groceries", time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC))

	if err := store.DeleteTransaction(8, tx.ID); !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound for another user, got %v", err)
	}
	if err := store.DeleteTransaction(7, tx.ID); err != nil {
		t.Fatalf("DeleteTransaction: %v", err)
	}
	if err := store.DeleteTransaction(7, tx.ID); !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound on second delete, got %v", err)
	}
}

func TestFetchTransactionsFilters(t *testing.T) {
	store := newTestStore(t)
	jan := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	seed(t, store, 7, models.TypeExpense, 1000, "Groceries", jan)
	seed(t, store, 7, models.TypeExpense, 2000, "transport", feb)
	seed(t, store, 7, models.TypeIncome, 500000, "salary", mar)
	seed(t, store, 8, models.TypeExpense, 9999, "groceries", feb)

	t.Run("user scope only", func(t *testing.T) {
		txs, err := store.FetchTransactions(7, models.TransactionFilter{})
		if err != nil {
			t.Fatalf("FetchTransactions: %v", err)
		}
		if len(txs) != 3 {
			t.Fatalf("got %d rows, want 3", len(txs))
		}
		// Ascending by date.
		for i := 1; i < len(txs); i++ {
			if txs[i].Date.Before(txs[i-1].Date) {
				t.Fatalf("rows not date-ascending: %v before %v", txs[i-1].Date, txs[i].Date)
			}
		}
	})

	t.Run("type filter", func(t *testing.T) {
		txs, err := store.FetchTransactions(7, models.TransactionFilter{Type: models.TypeExpense})
		if err != nil {
			t.Fatalf("FetchTransactions: %v", err)
		}
		if len(txs) != 2 {
			t.Errorf("got %d rows, want 2", len(txs))
		}
	})

	t.Run("invalid type ignored", func(t *testing.T) {
		txs, err := store.FetchTransactions(7, models.TransactionFilter{Type: "transfer"})
		if err != nil {
			t.Fatalf("FetchTransactions: %v", err)
		}
		if len(txs) != 3 {
			t.Errorf("got %d rows, want 3 (invalid type must not filter)", len(txs))
		}
	})

	t.Run("category substring case-insensitive", func(t *testing.T) {
		txs, err := store.FetchTransactions(7, models.TransactionFilter{Category: "groc"})
		if err != nil {
			t.Fatalf("FetchTransactions: %v", err)
		}
		if len(txs) != 1 || txs[0].Category != "Groceries" {
			t.Errorf("got %+v, want the Groceries row", txs)
		}
	})

	t.Run("date bounds inclusive", func(t *testing.T) {
		txs, err := store.FetchTransactions(7, models.TransactionFilter{StartDate: &feb, EndDate: &feb})
		if err != nil {
			t.Fatalf("FetchTransactions: %v", err)
		}
		if len(txs) != 1 || txs[0].Amount.Cents != 2000 {
			t.Errorf("got %+v, want only the February row", txs)
		}
	})
}

func TestListTransactionsPagination(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seed(t, store, 7, models.TypeExpense, int64(100*(i+1)), "misc", base.AddDate(0, 0, i))
	}

	page1, total, err := store.ListTransactions(7, models.TransactionFilter{}, 1, 2)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if len(page1) != 2 {
		t.Fatalf("page 1 length = %d, want 2", len(page1))
	}
	// Newest first.
	if !page1[0].Date.After(page1[1].Date) {
		t.Errorf("page not date-descending: %v then %v", page1[0].Date, page1[1].Date)
	}

	page3, total, err := store.ListTransactions(7, models.TransactionFilter{}, 3, 2)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if total != 5 || len(page3) != 1 {
		t.Errorf("page 3 length = %d (total %d), want 1 of 5", len(page3), total)
	}
}

func TestListCategories(t *testing.T) {
	store := newTestStore(t)
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	seed(t, store, 7, models.TypeExpense, 100, "transport", date)
	seed(t, store, 7, models.TypeExpense, 200, "groceries", date)
	seed(t, store, 7, models.TypeExpense, 300, "groceries", date)
	seed(t, store, 8, models.TypeExpense, 400, "other-user", date)

	categories, err := store.ListCategories(7)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	want := []string{"groceries", "transport"}
	if len(categories) != len(want) {
		t.Fatalf("categories = %v, want %v", categories, want)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Errorf("categories = %v, want %v", categories, want)
		}
	}
}
