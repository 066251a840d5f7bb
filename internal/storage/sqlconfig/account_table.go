package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const (
	accountsTableName = "comptes"

	columnID           = "id"
	columnBalance      = "solde"
	columnType         = "type"
	columnCreationDate = "date_creation"
)

var accountColumns = []any{columnID, columnBalance, columnType, columnCreationDate}

// AccountsTable provides access to the comptes table.
type AccountsTable struct {
	exec bob.Executor
}

// Ensure AccountsTable implements IAccountTable at compile time.
var _ IAccountTable = (*AccountsTable)(nil)

func NewAccountsTable(db *sql.DB) *AccountsTable {
	return &AccountsTable{exec: bob.NewDB(db)}
}

func (t *AccountsTable) FindByID(ctx context.Context, id int64) (*Account, error) {
	query := psql.Select(
		sm.Columns(accountColumns...),
		sm.From(accountsTableName),
		sm.Where(psql.Quote(columnID).EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Account]())
	if err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}

// Insert stores a new account and returns it with the id the sequence assigned.
func (t *AccountsTable) Insert(ctx context.Context, create *AccountWrite) (*Account, error) {
	query := psql.Insert(
		im.Into(accountsTableName, columnBalance, columnType, columnCreationDate),
		im.Values(psql.Arg(create.Balance), psql.Arg(create.Type), psql.Arg(create.CreationDate)),
		im.Returning(accountColumns...),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns every account ordered by id.
func (t *AccountsTable) List(ctx context.Context) ([]*Account, error) {
	query := psql.Select(
		sm.Columns(accountColumns...),
		sm.From(accountsTableName),
		sm.OrderBy(psql.Quote(columnID)).Asc(),
	)

	rows, err := bob.All(ctx, t.exec, query, scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}

	result := make([]*Account, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Update replaces every stored field of the account.
func (t *AccountsTable) Update(ctx context.Context, id int64, update *AccountWrite) (*Account, error) {
	query := psql.Update(
		um.Table(accountsTableName),
		um.SetCol(columnBalance).ToArg(update.Balance),
		um.SetCol(columnType).ToArg(update.Type),
		um.SetCol(columnCreationDate).ToArg(update.CreationDate),
		um.Where(psql.Quote(columnID).EQ(psql.Arg(id))),
		um.Returning(accountColumns...),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Account]())
	if err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}

func (t *AccountsTable) Delete(ctx context.Context, id int64) error {
	query := psql.Delete(
		dm.From(accountsTableName),
		dm.Where(psql.Quote(columnID).EQ(psql.Arg(id))),
	)

	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAccountNotFound
	}
	return err
}
