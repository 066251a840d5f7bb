package comptes

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/compte-client/internal/compte"
	"github.com/carson-networks/compte-client/internal/logging"
)

type ListComptesOutput struct {
	Body compte.AccountList
}

type accountLister interface {
	ListAccounts(ctx context.Context) (compte.AccountList, error)
}

// ListComptesHandler handles GET /comptes.
type ListComptesHandler struct {
	AccountService accountLister
}

// NewListComptesHandler creates a new ListComptesHandler.
func NewListComptesHandler(svc accountLister) *ListComptesHandler {
	return &ListComptesHandler{AccountService: svc}
}

// Register registers the list comptes endpoint with the Huma API.
func (h *ListComptesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-comptes",
		Method:      http.MethodGet,
		Path:        collectionPath,
		Summary:     "List comptes",
		Description: "Returns every compte. XML responses wrap the items in a List element.",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *ListComptesHandler) handle(ctx context.Context, _ *struct{}) (*ListComptesOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listComptesMs")
	}
	accounts, err := h.AccountService.ListAccounts(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list comptes", err)
	}

	if accounts == nil {
		accounts = compte.AccountList{}
	}
	if logData != nil {
		logData.AddData("compteCount", len(accounts))
	}

	return &ListComptesOutput{Body: accounts}, nil
}
