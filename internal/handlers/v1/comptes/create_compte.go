package comptes

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/compte-client/internal/compte"
	"github.com/carson-networks/compte-client/internal/logging"
)

type CreateCompteInput struct {
	Body compte.Account
}

type CreateCompteOutput struct {
	Status int
	Body   compte.Account
}

type accountCreator interface {
	CreateAccount(ctx context.Context, account compte.Account) (compte.Account, error)
}

// CreateCompteHandler handles POST /comptes.
type CreateCompteHandler struct {
	AccountService accountCreator
}

// NewCreateCompteHandler creates a new CreateCompteHandler.
func NewCreateCompteHandler(svc accountCreator) *CreateCompteHandler {
	return &CreateCompteHandler{AccountService: svc}
}

// Register registers the create compte endpoint with the Huma API.
func (h *CreateCompteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:      "create-compte",
		Method:           http.MethodPost,
		Path:             collectionPath,
		Summary:          "Create a compte",
		Description:      "Stores a new compte. The id is assigned by the server; any id in the body is ignored.",
		Tags:             []string{tag},
		DefaultStatus:    http.StatusCreated,
		SkipValidateBody: true,
	}, h.handle)
}

func (h *CreateCompteHandler) handle(ctx context.Context, input *CreateCompteInput) (*CreateCompteOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createCompteMs")
	}
	created, err := h.AccountService.CreateAccount(ctx, input.Body.WithoutID())
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create compte", err)
	}

	if logData != nil {
		logData.AddData("compteID", created.IDValue())
	}

	return &CreateCompteOutput{
		Status: http.StatusCreated,
		Body:   created,
	}, nil
}
