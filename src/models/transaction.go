package models

import (
	"errors"
	"strings"
	"time"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the two recognized ledger types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// DateTimeLayout is the fixed-width UTC layout transactions are stored with.
// Fixed width keeps lexicographic order equal to instant order, so the store
// can compare dates as strings.
const DateTimeLayout = "2006-01-02T15:04:05.000Z"

var (
	ErrInvalidType   = errors.New("type must be income or expense")
	ErrEmptyCategory = errors.New("category is required")
	ErrInvalidDate   = errors.New("date must be a valid date")
)

// Transaction is a single ledger entry, always owned by exactly one user.
// Date is the economic date of the transaction, not its creation time.
type Transaction struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"-"`
	Type        TransactionType `json:"type"`
	Amount      Money           `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
}

// Validate checks the write-time invariants. The aggregation path trusts
// these and does not re-validate stored rows.
func (t Transaction) Validate() error {
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if t.Amount.Cents <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// TransactionFilter narrows a user's ledger for reads. The user scope itself
// is never part of the filter; it is a mandatory argument on every store call.
type TransactionFilter struct {
	// Type restricts to a single transaction type. Invalid values are
	// ignored rather than rejected (permissive-filter policy).
	Type TransactionType

	// Category is matched as a case-insensitive unanchored substring.
	Category string

	// Inclusive date bounds; either may be open.
	StartDate *time.Time
	EndDate   *time.Time
}
