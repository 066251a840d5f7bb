package service

import (
	"github.com/carson-networks/compte-client/internal/compte"
	"github.com/carson-networks/compte-client/internal/storage/sqlconfig"
)

var ErrAccountNotFound = sqlconfig.ErrAccountNotFound

// accountToStorage drops the id; storage owns it.
func accountToStorage(account compte.Account) *sqlconfig.AccountWrite {
	return &sqlconfig.AccountWrite{
		Balance:      account.Balance,
		Type:         account.Type,
		CreationDate: account.CreationDate,
	}
}

func accountFromStorage(row *sqlconfig.Account) compte.Account {
	return compte.Account{
		ID:           compte.Int64(row.ID),
		Balance:      row.Balance,
		Type:         row.Type,
		CreationDate: row.CreationDate,
	}
}
