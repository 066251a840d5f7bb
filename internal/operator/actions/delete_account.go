package actions

import (
	"context"
)

type DeleteAccount struct {
	ID int64

	IAction
}

func (d *DeleteAccount) Perform(ctx context.Context, accounts AccountClient) error {
	return accounts.Delete(ctx, d.ID)
}
