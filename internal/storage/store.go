package storage

import (
	"context"

	"github.com/DjordjeVuckovic/truth-compare/internal/apperr"
	"github.com/DjordjeVuckovic/truth-compare/internal/domain"
	"github.com/DjordjeVuckovic/truth-compare/pkg/pagination"
	"github.com/google/uuid"
)

var ErrNotFound = apperr.ErrNotFound

type ComparisonStore interface {
	Save(ctx context.Context, c domain.Comparison) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Comparison, error)
	// List returns comparisons newest first.
	List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Comparison], error)
}

type Type string

const (
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
