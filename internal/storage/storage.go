package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/carson-networks/compte-client/internal/config"
	"github.com/carson-networks/compte-client/internal/storage/memstore"
	"github.com/carson-networks/compte-client/internal/storage/sqlconfig"
)

type Storage struct {
	// DB is nil for the memory driver.
	DB       *sql.DB
	Accounts sqlconfig.IAccountTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	switch env.StorageDriver {
	case config.StorageDriverPostgres:
		db, err := sql.Open("postgres", env.PostgresURL())
		if err != nil {
			return nil, err
		}
		return &Storage{
			DB:       db,
			Accounts: sqlconfig.NewAccountsTable(db),
		}, nil
	case config.StorageDriverMemory, "":
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", env.StorageDriver)
	}
}

func NewMemoryStorage() *Storage {
	return &Storage{Accounts: memstore.NewAccountsTable()}
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
