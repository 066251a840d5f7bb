package actions

import (
	"context"

	"github.com/carson-networks/compte-client/internal/compte"
)

type ListAccounts struct {
	Result []compte.Account

	IAction
}

func (l *ListAccounts) Perform(ctx context.Context, accounts AccountClient) error {
	result, err := accounts.ListAll(ctx)
	if err != nil {
		return err
	}

	l.Result = result
	return nil
}
