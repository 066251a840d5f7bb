package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/compte-client/api"
	"github.com/carson-networks/compte-client/internal/config"
	"github.com/carson-networks/compte-client/internal/logging"
	"github.com/carson-networks/compte-client/internal/service"
	"github.com/carson-networks/compte-client/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLoggingWithLevel(envConfig.LogLevel)
	logger.WithField("storageDriver", envConfig.StorageDriver).Info("compte-server starting")

	store, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer store.Close()

	if envConfig.RunMigrations && store.DB != nil {
		if _, _, err := storage.Migrate(store.DB, logger); err != nil {
			logger.WithError(err).Fatal("storage.Migrate")
			return
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.ServerPort,
		Service: service.NewService(store),
		DB:      store.DB,
	}
	httpRest.Serve(ctx)
}
