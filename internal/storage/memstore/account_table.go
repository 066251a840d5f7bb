// Package memstore keeps the comptes table in process memory. It backs the
// reference server when no database is configured and in tests.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/carson-networks/compte-client/internal/storage/sqlconfig"
)

type AccountsTable struct {
	mutex  sync.RWMutex
	rows   map[int64]sqlconfig.Account
	nextID int64
}

var _ sqlconfig.IAccountTable = (*AccountsTable)(nil)

func NewAccountsTable() *AccountsTable {
	return &AccountsTable{
		rows:   make(map[int64]sqlconfig.Account),
		nextID: 1,
	}
}

func (t *AccountsTable) FindByID(_ context.Context, id int64) (*sqlconfig.Account, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, sqlconfig.ErrAccountNotFound
	}
	return &row, nil
}

// Insert assigns ids from a sequence starting at 1. Ids are never reused.
func (t *AccountsTable) Insert(_ context.Context, create *sqlconfig.AccountWrite) (*sqlconfig.Account, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	row := sqlconfig.Account{
		ID:           t.nextID,
		Balance:      create.Balance,
		Type:         create.Type,
		CreationDate: create.CreationDate,
	}
	t.rows[row.ID] = row
	t.nextID++

	return &row, nil
}

func (t *AccountsTable) List(_ context.Context) ([]*sqlconfig.Account, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	result := make([]*sqlconfig.Account, 0, len(t.rows))
	for _, row := range t.rows {
		row := row
		result = append(result, &row)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (t *AccountsTable) Update(_ context.Context, id int64, update *sqlconfig.AccountWrite) (*sqlconfig.Account, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if _, ok := t.rows[id]; !ok {
		return nil, sqlconfig.ErrAccountNotFound
	}

	row := sqlconfig.Account{
		ID:           id,
		Balance:      update.Balance,
		Type:         update.Type,
		CreationDate: update.CreationDate,
	}
	t.rows[id] = row
	return &row, nil
}

func (t *AccountsTable) Delete(_ context.Context, id int64) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if _, ok := t.rows[id]; !ok {
		return sqlconfig.ErrAccountNotFound
	}
	delete(t.rows, id)
	return nil
}

// Seed stores rows as given, ids included, and moves the sequence past them.
func (t *AccountsTable) Seed(rows ...sqlconfig.Account) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	for _, row := range rows {
		t.rows[row.ID] = row
		if row.ID >= t.nextID {
			t.nextID = row.ID + 1
		}
	}
}
