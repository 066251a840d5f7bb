package service

import (
	"context"

	"github.com/carson-networks/compte-client/internal/compte"
	"github.com/carson-networks/compte-client/internal/storage"
)

// AccountService handles account business logic.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// CreateAccount stores a new account and returns it with its assigned id.
// Any id on the input is ignored.
func (s *AccountService) CreateAccount(ctx context.Context, account compte.Account) (compte.Account, error) {
	row, err := s.storage.Accounts.Insert(ctx, accountToStorage(account))
	if err != nil {
		return compte.Account{}, err
	}
	return accountFromStorage(row), nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id int64) (compte.Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, id)
	if err != nil {
		return compte.Account{}, err
	}
	return accountFromStorage(row), nil
}

// ListAccounts returns every account. No rows is an empty, non-nil list.
func (s *AccountService) ListAccounts(ctx context.Context) (compte.AccountList, error) {
	rows, err := s.storage.Accounts.List(ctx)
	if err != nil {
		return nil, err
	}

	accounts := make(compte.AccountList, len(rows))
	for i, row := range rows {
		accounts[i] = accountFromStorage(row)
	}
	return accounts, nil
}

// UpdateAccount replaces the stored state of account id.
func (s *AccountService) UpdateAccount(ctx context.Context, id int64, account compte.Account) (compte.Account, error) {
	row, err := s.storage.Accounts.Update(ctx, id, accountToStorage(account))
	if err != nil {
		return compte.Account{}, err
	}
	return accountFromStorage(row), nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, id int64) error {
	return s.storage.Accounts.Delete(ctx, id)
}
