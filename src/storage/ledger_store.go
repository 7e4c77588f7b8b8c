package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/username/centavo/backend/src/models"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// LedgerStore is the sole data-access surface for a user's ledger. Every
// method takes the owning userID and scopes its query with it; there is no
// way to read or touch another user's rows through this interface.
type LedgerStore interface {
	CreateTransaction(tx *models.Transaction) error
	GetTransactionByID(userID, id int64) (*models.Transaction, error)
	UpdateTransaction(tx *models.Transaction) error
	DeleteTransaction(userID, id int64) error

	// FetchTransactions returns the full matched set for the reporting
	// path, ordered by date then id ascending so repeated identical
	// requests fold in the same order.
	FetchTransactions(userID int64, f models.TransactionFilter) ([]models.Transaction, error)

	// ListTransactions is the paginated listing used by the transactions
	// endpoint, newest first. Returns the page and the total match count.
	ListTransactions(userID int64, f models.TransactionFilter, page, limit int) ([]models.Transaction, int, error)

	ListCategories(userID int64) ([]string, error)
}

type sqliteLedgerStore struct {
	db *sql.DB
}

func NewSQLiteLedgerStore(db *sql.DB) LedgerStore {
	return &sqliteLedgerStore{db: db}
}

const transactionColumns = "id, user_id, type, amount_cents, category, description, date"

func (s *sqliteLedgerStore) CreateTransaction(tx *models.Transaction) error {
	res, err := s.db.Exec(`
		INSERT INTO transactions (user_id, type, amount_cents, category, description, date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		tx.UserID, string(tx.Type), tx.Amount.Cents, tx.Category, tx.Description, formatDate(tx.Date))
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted transaction id: %w", err)
	}
	tx.ID = id
	return nil
}

func (s *sqliteLedgerStore) GetTransactionByID(userID, id int64) (*models.Transaction, error) {
	row := s.db.QueryRow(`
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE id = ? AND user_id = ?`, id, userID)
	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("querying transaction %d: %w", id, err)
	}
	return tx, nil
}

func (s *sqliteLedgerStore) UpdateTransaction(tx *models.Transaction) error {
	res, err := s.db.Exec(`
		UPDATE transactions
		SET type = ?, amount_cents = ?, category = ?, description = ?, date = ?
		WHERE id = ? AND user_id = ?`,
		string(tx.Type), tx.Amount.Cents, tx.Category, tx.Description, formatDate(tx.Date),
		tx.ID, tx.UserID)
	if err != nil {
		return fmt.Errorf("updating transaction %d: %w", tx.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update of transaction %d: %w", tx.ID, err)
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (s *sqliteLedgerStore) DeleteTransaction(userID, id int64) error {
	res, err := s.db.Exec(`DELETE FROM transactions WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting transaction %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete of transaction %d: %w", id, err)
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (s *sqliteLedgerStore) FetchTransactions(userID int64, f models.TransactionFilter) ([]models.Transaction, error) {
	where, args := buildFilter(userID, f)
	rows, err := s.db.Query(`
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE `+where+`
		ORDER BY date ASC, id ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying transactions for user %d: %w", userID, err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (s *sqliteLedgerStore) ListTransactions(userID int64, f models.TransactionFilter, page, limit int) ([]models.Transaction, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	where, args := buildFilter(userID, f)

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM transactions WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting transactions for user %d: %w", userID, err)
	}

	listArgs := append(append([]any{}, args...), limit, (page-1)*limit)
	rows, err := s.db.Query(`
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE `+where+`
		ORDER BY date DESC, id DESC
		LIMIT ? OFFSET ?`, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing transactions for user %d: %w", userID, err)
	}
	defer rows.Close()

	txs, err := collectTransactions(rows)
	if err != nil {
		return nil, 0, err
	}
	return txs, total, nil
}

func (s *sqliteLedgerStore) ListCategories(userID int64) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT category FROM transactions
		WHERE user_id = ?
		ORDER BY category ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing categories for user %d: %w", userID, err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}
	return categories, nil
}

// buildFilter assembles the WHERE clause. user_id is always the first
// condition; the remaining filters are appended only when present. An invalid
// type value is dropped, not rejected.
func buildFilter(userID int64, f models.TransactionFilter) (string, []any) {
	conds := []string{"user_id = ?"}
	args := []any{userID}

	if f.Type.Valid() {
		conds = append(conds, "type = ?")
		args = append(args, string(f.Type))
	}
	if f.Category != "" {
		// instr on lowered text gives a case-insensitive substring
		// match without LIKE wildcard escaping.
		conds = append(conds, "instr(lower(category), lower(?)) > 0")
		args = append(args, f.Category)
	}
	if f.StartDate != nil {
		conds = append(conds, "date >= ?")
		args = append(args, formatDate(*f.StartDate))
	}
	if f.EndDate != nil {
		conds = append(conds, "date <= ?")
		args = append(args, formatDate(*f.EndDate))
	}
	return strings.Join(conds, " AND "), args
}

func formatDate(t time.Time) string {
	return t.UTC().Format(models.DateTimeLayout)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var (
		tx      models.Transaction
		typ     string
		cents   int64
		dateStr string
	)
	if err := row.Scan(&tx.ID, &tx.UserID, &typ, &cents, &tx.Category, &tx.Description, &dateStr); err != nil {
		return nil, err
	}
	tx.Type = models.TransactionType(typ)
	tx.Amount = models.Money{Cents: cents}
	date, err := time.Parse(models.DateTimeLayout, dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing stored date %q: %w", dateStr, err)
	}
	tx.Date = date
	return &tx, nil
}

func collectTransactions(rows *sql.Rows) ([]models.Transaction, error) {
	txs := []models.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		txs = append(txs, *tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}
	return txs, nil
}
