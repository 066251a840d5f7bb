package comptes

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/compte-client/internal/compte"
	"github.com/carson-networks/compte-client/internal/logging"
)

type UpdateCompteInput struct {
	ID   int64 `path:"id" doc:"Compte id"`
	Body compte.Account
}

type UpdateCompteOutput struct {
	Body compte.Account
}

type accountUpdater interface {
	UpdateAccount(ctx context.Context, id int64, account compte.Account) (compte.Account, error)
}

// UpdateCompteHandler handles PUT /comptes/{id}.
type UpdateCompteHandler struct {
	AccountService accountUpdater
}

// NewUpdateCompteHandler creates a new UpdateCompteHandler.
func NewUpdateCompteHandler(svc accountUpdater) *UpdateCompteHandler {
	return &UpdateCompteHandler{AccountService: svc}
}

// Register registers the update compte endpoint with the Huma API.
func (h *UpdateCompteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:      "update-compte",
		Method:           http.MethodPut,
		Path:             itemPath,
		Summary:          "Replace a compte",
		Description:      "Replaces every field of the compte addressed by the path id.",
		Tags:             []string{tag},
		SkipValidateBody: true,
	}, h.handle)
}

func (h *UpdateCompteHandler) handle(ctx context.Context, input *UpdateCompteInput) (*UpdateCompteOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("compteID", input.ID)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateCompteMs")
	}
	updated, err := h.AccountService.UpdateAccount(ctx, input.ID, input.Body.WithID(input.ID))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, storageError(err, "failed to update compte")
	}

	return &UpdateCompteOutput{Body: updated}, nil
}
