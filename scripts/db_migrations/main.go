package main

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/compte-client/internal/config"
	"github.com/carson-networks/compte-client/internal/logging"
	"github.com/carson-networks/compte-client/internal/storage"
)

func main() {
	logger := logging.SetupLogging()

	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		logger.WithError(err).Fatal("sql.Open")
		return
	}
	defer db.Close()

	if _, _, err := storage.Migrate(db, logger); err != nil {
		logger.WithFields(logrus.Fields{
			"address":  env.PostgresAddress,
			"database": env.PostgresDB,
		}).WithError(err).Fatal("storage.Migrate")
	}
}
