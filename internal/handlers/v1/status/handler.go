package status

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/carson-networks/compte-client/internal/logging"
)

type Handler struct {
	// DB is pinged on every call when set.
	DB *sql.DB
}

func NewHandler(db *sql.DB) Handler {
	return Handler{DB: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if h.DB != nil {
		stopTimer := logData.AddTiming("pingMs")
		err := h.DB.PingContext(req.Context())
		stopTimer()
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return fmt.Errorf("status: database unreachable: %w", err)
		}
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
