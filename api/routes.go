package api

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/carson-networks/compte-client/internal/codec"
	"github.com/carson-networks/compte-client/internal/handlers/v1/comptes"
	"github.com/carson-networks/compte-client/internal/handlers/v1/status"
	"github.com/carson-networks/compte-client/internal/logging"
	"github.com/carson-networks/compte-client/internal/service"
)

const (
	title   = "Compte API"
	version = "1.0.0"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	// DB backs the status check; nil for the memory driver.
	DB *sql.DB
}

func NewConfig() huma.Config {
	return codec.HumaConfig(title, version)
}

// Handler builds the full routing tree: /status, the huma API under
// /comptes, per-request logging and otel instrumentation.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.DB)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, NewConfig())
	comptes.RegisterAll(humaAPI, r.Service.Account)

	return otelhttp.NewHandler(logging.Middleware(r.Logger, mux), "compte-server")
}

// Serve blocks until ctx is done or the listener fails.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
