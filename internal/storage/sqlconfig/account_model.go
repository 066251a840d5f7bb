package sqlconfig

import (
	"context"
	"errors"
)

var ErrAccountNotFound = errors.New("compte not found")

// Account is one row of the comptes table.
type Account struct {
	ID           int64   `db:"id"`
	Balance      float64 `db:"solde"`
	Type         string  `db:"type"`
	CreationDate string  `db:"date_creation"`
}

// AccountWrite is the full state stored by Insert and Update.
type AccountWrite struct {
	Balance      float64
	Type         string
	CreationDate string
}

// IAccountTable defines the interface for account storage operations.
// Lookups of a missing id return ErrAccountNotFound.
//
//go:generate mockery --name IAccountTable --inpackage --with-expecter
type IAccountTable interface {
	FindByID(ctx context.Context, id int64) (*Account, error)
	Insert(ctx context.Context, create *AccountWrite) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
	Update(ctx context.Context, id int64, update *AccountWrite) (*Account, error)
	Delete(ctx context.Context, id int64) error
}
