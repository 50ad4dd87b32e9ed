// Package testing starts throwaway infrastructure for integration tests.
package testing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgImage      = "postgres:17.5"
	pgDatabase   = "truth_compare_test"
	pgCredential = "test"
)

// PGContainer is a Postgres with every db/migrations/*.up.sql applied.
type PGContainer struct {
	Container  testcontainers.Container
	ConnString string
}

// NewPGContainerWithCleanup fails tb when the container cannot start and
// terminates it when tb finishes.
func NewPGContainerWithCleanup(ctx context.Context, tb testing.TB) *PGContainer {
	tb.Helper()

	container, err := startPGContainer(ctx)
	if err != nil {
		tb.Fatalf("failed to create postgres container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container.Container); err != nil {
			tb.Logf("failed to terminate postgres container: %v", err)
		}
	})

	return container
}

func startPGContainer(ctx context.Context) (*PGContainer, error) {
	initScript, err := writeInitScript()
	if err != nil {
		return nil, err
	}
	defer os.Remove(initScript)

	pgContainer, err := postgres.Run(ctx,
		pgImage,
		postgres.WithDatabase(pgDatabase),
		postgres.WithUsername(pgCredential),
		postgres.WithPassword(pgCredential),
		postgres.WithInitScripts(initScript),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	return &PGContainer{
		Container:  pgContainer,
		ConnString: connStr,
	}, nil
}

// writeInitScript concatenates the up migrations in file name order into a
// temp file and returns its path.
func writeInitScript() (string, error) {
	_, self, _, _ := runtime.Caller(0)
	migrationsDir := filepath.Join(filepath.Dir(self), "..", "..", "db", "migrations")

	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.up.sql"))
	if err != nil {
		return "", fmt.Errorf("failed to find migration files: %w", err)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no migrations found in %s", migrationsDir)
	}
	slices.Sort(files)

	parts := make([]string, 0, len(files))
	for _, f := range files {
		content, err := os.ReadFile(f)
		if err != nil {
			return "", fmt.Errorf("failed to read migration file %s: %w", f, err)
		}
		parts = append(parts, strings.TrimSpace(string(content)))
	}

	tmp, err := os.CreateTemp("", "truth-compare-migrations-*.sql")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer tmp.Close()

	if _, err := tmp.WriteString(strings.Join(parts, "\n\n") + "\n"); err != nil {
		return "", fmt.Errorf("failed to write migrations: %w", err)
	}
	return tmp.Name(), nil
}
