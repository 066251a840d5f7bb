package actions

import (
	"context"

	"github.com/carson-networks/compte-client/internal/compte"
)

type UpdateAccount struct {
	ID      int64
	Account compte.Account

	Result compte.Account

	IAction
}

func (u *UpdateAccount) Perform(ctx context.Context, accounts AccountClient) error {
	updated, err := accounts.Update(ctx, u.ID, u.Account)
	if err != nil {
		return err
	}

	u.Result = updated
	return nil
}
