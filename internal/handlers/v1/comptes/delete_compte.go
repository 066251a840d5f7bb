package comptes

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/compte-client/internal/logging"
)

type DeleteCompteInput struct {
	ID int64 `path:"id" doc:"Compte id"`
}

type DeleteCompteOutput struct {
	Status int
}

type accountDeleter interface {
	DeleteAccount(ctx context.Context, id int64) error
}

// DeleteCompteHandler handles DELETE /comptes/{id}.
type DeleteCompteHandler struct {
	AccountService accountDeleter
}

// NewDeleteCompteHandler creates a new DeleteCompteHandler.
func NewDeleteCompteHandler(svc accountDeleter) *DeleteCompteHandler {
	return &DeleteCompteHandler{AccountService: svc}
}

// Register registers the delete compte endpoint with the Huma API.
func (h *DeleteCompteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-compte",
		Method:        http.MethodDelete,
		Path:          itemPath,
		Summary:       "Delete a compte",
		Tags:          []string{tag},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteCompteHandler) handle(ctx context.Context, input *DeleteCompteInput) (*DeleteCompteOutput, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("compteID", input.ID)
	}

	if err := h.AccountService.DeleteAccount(ctx, input.ID); err != nil {
		return nil, storageError(err, "failed to delete compte")
	}

	return &DeleteCompteOutput{Status: http.StatusNoContent}, nil
}
