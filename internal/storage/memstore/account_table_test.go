package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/compte-client/internal/storage/sqlconfig"
)

func TestInsert_AssignsSequentialIDs(t *testing.T) {
	table := NewAccountsTable()
	ctx := context.Background()

	first, err := table.Insert(ctx, &sqlconfig.AccountWrite{Balance: 10, Type: "COURANT", CreationDate: "2025-01-01"})
	require.NoError(t, err)
	second, err := table.Insert(ctx, &sqlconfig.AccountWrite{Balance: 20, Type: "EPARGNE", CreationDate: "2025-01-02"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	found, err := table.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "EPARGNE", found.Type)
}

func TestList_OrderedByID(t *testing.T) {
	table := NewAccountsTable()
	table.Seed(
		sqlconfig.Account{ID: 5, Balance: 5},
		sqlconfig.Account{ID: 2, Balance: 2},
		sqlconfig.Account{ID: 9, Balance: 9},
	)

	rows, err := table.List(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, int64(2), rows[0].ID)
	assert.Equal(t, int64(5), rows[1].ID)
	assert.Equal(t, int64(9), rows[2].ID)

	created, err := table.Insert(context.Background(), &sqlconfig.AccountWrite{})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
}

func TestList_Empty(t *testing.T) {
	rows, err := NewAccountsTable().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestUpdate_ReplacesAllFields(t *testing.T) {
	table := NewAccountsTable()
	table.Seed(sqlconfig.Account{ID: 7, Balance: 1500, Type: "COURANT", CreationDate: "2025-01-01"})

	updated, err := table.Update(context.Background(), 7, &sqlconfig.AccountWrite{Balance: 2000, Type: "EPARGNE"})
	require.NoError(t, err)
	assert.Equal(t, sqlconfig.Account{ID: 7, Balance: 2000, Type: "EPARGNE"}, *updated)
}

func TestUpdate_NotFound(t *testing.T) {
	_, err := NewAccountsTable().Update(context.Background(), 1, &sqlconfig.AccountWrite{})
	assert.ErrorIs(t, err, sqlconfig.ErrAccountNotFound)
}

func TestDelete(t *testing.T) {
	table := NewAccountsTable()
	table.Seed(sqlconfig.Account{ID: 1}, sqlconfig.Account{ID: 2})
	ctx := context.Background()

	require.NoError(t, table.Delete(ctx, 1))
	assert.ErrorIs(t, table.Delete(ctx, 1), sqlconfig.ErrAccountNotFound)

	_, err := table.FindByID(ctx, 1)
	assert.ErrorIs(t, err, sqlconfig.ErrAccountNotFound)

	rows, err := table.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].ID)
}

func TestFindByID_ReturnsCopy(t *testing.T) {
	table := NewAccountsTable()
	table.Seed(sqlconfig.Account{ID: 1, Balance: 1})

	found, err := table.FindByID(context.Background(), 1)
	require.NoError(t, err)
	found.Balance = 99

	again, err := table.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, again.Balance)
}
