package services

import (
	"errors"
	"math"

	"smart-supermarket/models"
	"smart-supermarket/repositories"

	"github.com/shopspring/decimal"
)

var ErrUnbalancedEntry = errors.New("journal entry debits and credits do not balance")

type AccountingService struct {
	accountingRepo *repositories.AccountingRepository
}

func NewAccountingService() *AccountingService {
	return &AccountingService{
		accountingRepo: repositories.NewAccountingRepository(),
	}
}

func (s *AccountingService) GetAccounts() ([]models.Account, error) {
	return s.accountingRepo.GetAccounts()
}

func (s *AccountingService) CreateAccount(req models.CreateAccountRequest) (*models.Account, error) {
	account := &models.Account{
		Name:            req.Name,
		AccountType:     req.AccountType,
		Balance:         req.Balance,
		ParentAccountID: req.ParentAccountID,
	}

	if err := s.accountingRepo.CreateAccount(account); err != nil {
		return nil, err
	}
	return account, nil
}

// CreateJournalEntry validates line totals before writing. A balanced entry
// posts immediately and moves account balances; an unbalanced entry is
// rejected outright rather than saved as a draft with bad numbers.
func (s *AccountingService) CreateJournalEntry(req models.CreateJournalEntryRequest, createdBy string) (*models.JournalEntry, error) {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	entry := &models.JournalEntry{
		EntryDate:   req.EntryDate,
		Description: req.Description,
		CreatedBy:   createdBy,
	}

	for _, d := range req.Details {
		if d.Debit.IsNegative() || d.Credit.IsNegative() {
			return nil, errors.New("journal amounts cannot be negative")
		}
		account, err := s.accountingRepo.GetAccountByID(d.AccountID)
		if err != nil {
			return nil, err
		}
		entry.Details = append(entry.Details, models.JournalDetail{
			AccountID:   account.ID,
			AccountName: account.Name,
			Debit:       d.Debit,
			Credit:      d.Credit,
		})
		totalDebit = totalDebit.Add(d.Debit)
		totalCredit = totalCredit.Add(d.Credit)
	}

	entry.TotalDebit = totalDebit
	entry.TotalCredit = totalCredit

	if !entry.Balanced() {
		return nil, ErrUnbalancedEntry
	}
	entry.Status = models.JournalPosted

	if err := s.accountingRepo.CreateJournalEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *AccountingService) GetJournalEntries(page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	entries, total, err := s.accountingRepo.GetJournalEntries(page, limit)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Journal entries retrieved successfully",
		Data:    entries,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}, nil
}

func (s *AccountingService) GetJournalEntryByID(id int) (*models.JournalEntry, error) {
	return s.accountingRepo.GetJournalEntryByID(id)
}
