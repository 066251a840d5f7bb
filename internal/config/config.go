package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	// Client side
	APIURL          string
	Format          string
	HTTPTimeout     time.Duration
	OperatorWorkers int

	// Reference server
	ServerPort    string
	StorageDriver string
	RunMigrations bool

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	LogLevel string
}

// PostgresURL is the lib/pq connection string for the configured database.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		APIURL:          "http://localhost:9446",
		Format:          "JSON",
		HTTPTimeout:     30 * time.Second,
		OperatorWorkers: 2,

		ServerPort:    "9446",
		StorageDriver: StorageDriverMemory,

		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",

		LogLevel: "info",
	}

	overrideString(&env.APIURL, "COMPTE_API_URL")
	overrideString(&env.Format, "COMPTE_FORMAT")
	overrideString(&env.ServerPort, "SERVER_PORT")
	overrideString(&env.StorageDriver, "STORAGE_DRIVER")
	overrideString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	overrideString(&env.PostgresPort, "POSTGRES_PORT")
	overrideString(&env.PostgresDB, "POSTGRES_DB")
	overrideString(&env.PostgresUsername, "POSTGRES_USERNAME")
	overrideString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	overrideString(&env.LogLevel, "LOG_LEVEL")

	if envTimeout := os.Getenv("HTTP_TIMEOUT"); len(envTimeout) != 0 {
		timeout, err := time.ParseDuration(envTimeout)
		if err != nil {
			return nil, fmt.Errorf("HTTP_TIMEOUT: %w", err)
		}
		env.HTTPTimeout = timeout
	}

	if envMigrations := os.Getenv("RUN_MIGRATIONS"); len(envMigrations) != 0 {
		runMigrations, err := strconv.ParseBool(envMigrations)
		if err != nil {
			return nil, fmt.Errorf("RUN_MIGRATIONS: %w", err)
		}
		env.RunMigrations = runMigrations
	}

	if envWorkers := os.Getenv("OPERATOR_WORKERS"); len(envWorkers) != 0 {
		workers, err := strconv.Atoi(envWorkers)
		if err != nil {
			return nil, fmt.Errorf("OPERATOR_WORKERS: %w", err)
		}
		env.OperatorWorkers = workers
	}

	switch env.StorageDriver {
	case StorageDriverMemory, StorageDriverPostgres:
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER: unknown driver %q", env.StorageDriver)
	}

	return &env, nil
}

func overrideString(target *string, name string) {
	if value := os.Getenv(name); len(value) != 0 {
		*target = value
	}
}
