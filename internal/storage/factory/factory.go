package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/truth-compare/internal/storage"
	"github.com/DjordjeVuckovic/truth-compare/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/truth-compare/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/truth-compare/pkg/server"
)

// Backend bundles a store with the health check and cleanup of whatever
// resource backs it.
type Backend struct {
	Store   storage.ComparisonStore
	Health  pkgserver.HealthChecker
	Cleanup func()
}

// NewComparisonStore creates the storage.ComparisonStore selected by cfg.
func NewComparisonStore(ctx context.Context, cfg StorageConfig) (*Backend, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		return &Backend{
			Store:   pg.NewComparisonStore(pool),
			Health:  pool,
			Cleanup: pool.Close,
		}, nil

	case storage.InMem:
		return &Backend{
			Store:   in_mem.NewInMemStorer(),
			Health:  pkgserver.NewOkHealthChecker(),
			Cleanup: func() {},
		}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
