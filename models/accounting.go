package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	AccountAsset     = "Asset"
	AccountLiability = "Liability"
	AccountEquity    = "Equity"
	AccountRevenue   = "Revenue"
	AccountExpense   = "Expense"
)

type Account struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	AccountType     string          `json:"account_type"`
	Balance         decimal.Decimal `json:"balance"`
	ParentAccountID *int            `json:"parent_account_id,omitempty"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
}

const (
	JournalDraft  = "Draft"
	JournalPosted = "Posted"
)

type JournalEntry struct {
	ID          int             `json:"id"`
	EntryDate   time.Time       `json:"entry_date"`
	Description string          `json:"description"`
	CreatedBy   string          `json:"created_by"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Status      string          `json:"status"`
	Details     []JournalDetail `json:"details,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Balanced reports whether debits equal credits, the precondition for
// posting an entry.
func (e *JournalEntry) Balanced() bool {
	return e.TotalDebit.Equal(e.TotalCredit)
}

type JournalDetail struct {
	ID          int             `json:"id"`
	EntryID     int             `json:"entry_id"`
	AccountID   int             `json:"account_id"`
	AccountName string          `json:"account_name"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	CreatedAt   time.Time       `json:"created_at"`
}
