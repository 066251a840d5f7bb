package actions

import (
	"context"

	"github.com/carson-networks/compte-client/internal/compte"
)

// AccountClient is the remote collection an action runs against.
// *client.Client satisfies it.
type AccountClient interface {
	ListAll(ctx context.Context) ([]compte.Account, error)
	Create(ctx context.Context, account compte.Account) (compte.Account, error)
	Update(ctx context.Context, id int64, account compte.Account) (compte.Account, error)
	Delete(ctx context.Context, id int64) error
}

type IAction interface {
	Perform(ctx context.Context, accounts AccountClient) error
}
