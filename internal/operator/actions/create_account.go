package actions

import (
	"context"

	"github.com/carson-networks/compte-client/internal/compte"
)

type CreateAccount struct {
	Account compte.Account

	// Result is the stored record, id included.
	Result compte.Account

	IAction
}

func (c *CreateAccount) Perform(ctx context.Context, accounts AccountClient) error {
	created, err := accounts.Create(ctx, c.Account)
	if err != nil {
		return err
	}

	c.Result = created
	return nil
}
