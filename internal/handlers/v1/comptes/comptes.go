package comptes

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/compte-client/internal/compte"
	"github.com/carson-networks/compte-client/internal/service"
)

const (
	collectionPath = "/comptes"
	itemPath       = "/comptes/{id}"
	tag            = "Comptes"
)

// accountService is the slice of service.AccountService the handlers use.
type accountService interface {
	ListAccounts(ctx context.Context) (compte.AccountList, error)
	CreateAccount(ctx context.Context, account compte.Account) (compte.Account, error)
	UpdateAccount(ctx context.Context, id int64, account compte.Account) (compte.Account, error)
	DeleteAccount(ctx context.Context, id int64) error
}

// RegisterAll registers every /comptes endpoint.
func RegisterAll(api huma.API, svc accountService) {
	NewListComptesHandler(svc).Register(api)
	NewCreateCompteHandler(svc).Register(api)
	NewUpdateCompteHandler(svc).Register(api)
	NewDeleteCompteHandler(svc).Register(api)
}

func storageError(err error, message string) error {
	if errors.Is(err, service.ErrAccountNotFound) {
		return huma.Error404NotFound("compte not found", err)
	}
	return huma.NewError(http.StatusInternalServerError, message, err)
}
