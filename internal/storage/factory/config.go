package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/truth-compare/internal/storage"
	"github.com/DjordjeVuckovic/truth-compare/internal/storage/pg"
)

type StorageConfig struct {
	storage.Type
	Pg *pg.PoolConfig
}

// LoadEnv reads STORAGE_TYPE (default in_mem) and, for postgres,
// PG_CONNECTION_STRING and the optional PG_MAX_CONNS.
func LoadEnv() (*StorageConfig, error) {
	storageType := (storage.Type)(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Info("STORAGE_TYPE is not set, using in-memory storage")
		storageType = storage.InMem
	}
	if storageType != storage.PG && storageType != storage.InMem {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			[]storage.Type{storage.PG, storage.InMem})
	}

	var pgCfg *pg.PoolConfig
	if storageType == storage.PG {
		pgCfg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if pgCfg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
		if raw := os.Getenv("PG_MAX_CONNS"); raw != "" {
			n, err := strconv.ParseInt(raw, 10, 32)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS %q: must be a positive integer", raw)
			}
			pgCfg.MaxConns = int32(n)
		}
	}

	return &StorageConfig{
		Type: storageType,
		Pg:   pgCfg,
	}, nil
}
