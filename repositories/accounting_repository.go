package repositories

import (
	"context"
	"errors"
	"time"

	"smart-supermarket/config"
	"smart-supermarket/models"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type AccountingRepository struct{}

func NewAccountingRepository() *AccountingRepository {
	return &AccountingRepository{}
}

func (r *AccountingRepository) CreateAccount(account *models.Account) error {
	return config.DB.QueryRow(context.Background(),
		`INSERT INTO accounts (name, account_type, balance, parent_account_id, is_active, created_at)
		 VALUES ($1, $2, $3, $4, true, $5) RETURNING id, is_active, created_at`,
		account.Name, account.AccountType, account.Balance, account.ParentAccountID, time.Now(),
	).Scan(&account.ID, &account.IsActive, &account.CreatedAt)
}

func (r *AccountingRepository) GetAccounts() ([]models.Account, error) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT id, name, account_type, balance, parent_account_id, is_active, created_at
		 FROM accounts ORDER BY account_type, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.AccountType, &a.Balance,
			&a.ParentAccountID, &a.IsActive, &a.CreatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *AccountingRepository) GetAccountByID(id int) (*models.Account, error) {
	var a models.Account
	err := config.DB.QueryRow(context.Background(),
		`SELECT id, name, account_type, balance, parent_account_id, is_active, created_at
		 FROM accounts WHERE id = $1`, id,
	).Scan(&a.ID, &a.Name, &a.AccountType, &a.Balance, &a.ParentAccountID, &a.IsActive, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// CreateJournalEntry writes the entry, its details, and the resulting
// account balance movements in one transaction. Posted entries move
// balances; drafts do not.
func (r *AccountingRepository) CreateJournalEntry(entry *models.JournalEntry) error {
	ctx := context.Background()

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx,
		`INSERT INTO journal_entries (entry_date, description, created_by, total_debit, total_credit, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`,
		entry.EntryDate, entry.Description, entry.CreatedBy,
		entry.TotalDebit, entry.TotalCredit, entry.Status, now,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return err
	}

	for i := range entry.Details {
		detail := &entry.Details[i]
		detail.EntryID = entry.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO journal_details (entry_id, account_id, account_name, debit, credit, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`,
			detail.EntryID, detail.AccountID, detail.AccountName, detail.Debit, detail.Credit, now,
		).Scan(&detail.ID, &detail.CreatedAt)
		if err != nil {
			return err
		}

		if entry.Status == models.JournalPosted {
			movement := detail.Debit.Sub(detail.Credit)
			if !movement.Equal(decimal.Zero) {
				_, err = tx.Exec(ctx,
					`UPDATE accounts SET balance = balance + $1 WHERE id = $2`,
					movement, detail.AccountID)
				if err != nil {
					return err
				}
			}
		}
	}

	return tx.Commit(ctx)
}

func (r *AccountingRepository) GetJournalEntries(page, limit int) ([]models.JournalEntry, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM journal_entries`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT id, entry_date, description, created_by, total_debit, total_credit, status, created_at
		 FROM journal_entries ORDER BY entry_date DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(&e.ID, &e.EntryDate, &e.Description, &e.CreatedBy,
			&e.TotalDebit, &e.TotalCredit, &e.Status, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}

func (r *AccountingRepository) GetJournalEntryByID(id int) (*models.JournalEntry, error) {
	var e models.JournalEntry
	err := config.DB.QueryRow(context.Background(),
		`SELECT id, entry_date, description, created_by, total_debit, total_credit, status, created_at
		 FROM journal_entries WHERE id = $1`, id,
	).Scan(&e.ID, &e.EntryDate, &e.Description, &e.CreatedBy,
		&e.TotalDebit, &e.TotalCredit, &e.Status, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := config.DB.Query(context.Background(),
		`SELECT id, entry_id, account_id, account_name, debit, credit, created_at
		 FROM journal_details WHERE entry_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d models.JournalDetail
		if err := rows.Scan(&d.ID, &d.EntryID, &d.AccountID, &d.AccountName,
			&d.Debit, &d.Credit, &d.CreatedAt); err != nil {
			return nil, err
		}
		e.Details = append(e.Details, d)
	}
	return &e, rows.Err()
}
