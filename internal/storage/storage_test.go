package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/compte-client/internal/config"
	"github.com/carson-networks/compte-client/internal/storage/memstore"
	"github.com/carson-networks/compte-client/internal/storage/sqlconfig"
)

func TestNewStorage_Memory(t *testing.T) {
	s, err := NewStorage(&config.Config{StorageDriver: config.StorageDriverMemory})
	require.NoError(t, err)

	assert.Nil(t, s.DB)
	assert.IsType(t, &memstore.AccountsTable{}, s.Accounts)
	assert.NoError(t, s.Close())
}

// sql.Open only validates the driver name; no connection is made.
func TestNewStorage_Postgres(t *testing.T) {
	s, err := NewStorage(&config.Config{
		StorageDriver:    config.StorageDriverPostgres,
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
	})
	require.NoError(t, err)

	assert.NotNil(t, s.DB)
	assert.IsType(t, &sqlconfig.AccountsTable{}, s.Accounts)
	assert.NoError(t, s.Close())
}

func TestNewStorage_UnknownDriver(t *testing.T) {
	_, err := NewStorage(&config.Config{StorageDriver: "mongo"})
	assert.Error(t, err)
}
