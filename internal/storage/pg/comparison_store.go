package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/truth-compare/internal/domain"
	"github.com/DjordjeVuckovic/truth-compare/internal/storage"
	"github.com/DjordjeVuckovic/truth-compare/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ComparisonStore struct {
	db *pgxpool.Pool
}

func NewComparisonStore(pool *ConnectionPool) *ComparisonStore {
	return &ComparisonStore{db: pool.conn}
}

func (s *ComparisonStore) Save(ctx context.Context, c domain.Comparison) (uuid.UUID, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	if c.Variables == nil {
		c.Variables = []string{}
	}

	cmd := `
        INSERT INTO comparisons (id, expression1, expression2, variables, row_count, mismatches, equivalent, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		c.ID,
		c.Expression1,
		c.Expression2,
		c.Variables,
		c.RowCount,
		c.Mismatches,
		c.Equivalent,
		c.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to insert comparison: %w", err)
	}

	return id, nil
}

func (s *ComparisonStore) Get(ctx context.Context, id uuid.UUID) (*domain.Comparison, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, expression1, expression2, variables, row_count, mismatches, equivalent, created_at
		FROM comparisons
		WHERE id = $1
	`, id)

	c, err := scanComparison(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("comparison %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comparison: %w", err)
	}
	return c, nil
}

func (s *ComparisonStore) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Comparison], error) {
	_ = page.Validate()

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM comparisons`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count comparisons: %w", err)
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, expression1, expression2, variables, row_count, mismatches, equivalent, created_at
		FROM comparisons
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list comparisons: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Comparison, 0, page.Size)
	for rows.Next() {
		c, err := scanComparison(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comparison: %w", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comparisons: %w", err)
	}

	return pagination.NewOffsetResult(items, total, page.Page, page.Size), nil
}

func scanComparison(row pgx.Row) (*domain.Comparison, error) {
	var c domain.Comparison
	if err := row.Scan(
		&c.ID,
		&c.Expression1,
		&c.Expression2,
		&c.Variables,
		&c.RowCount,
		&c.Mismatches,
		&c.Equivalent,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
