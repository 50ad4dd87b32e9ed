package in_mem

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/truth-compare/internal/domain"
	"github.com/DjordjeVuckovic/truth-compare/internal/storage"
	"github.com/DjordjeVuckovic/truth-compare/pkg/pagination"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Comparison
	order       []uuid.UUID
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]domain.Comparison),
	}
}

func (s *InMemStorer) Save(ctx context.Context, c domain.Comparison) (uuid.UUID, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, exists := s.storage[c.ID]; !exists {
		s.order = append(s.order, c.ID)
	}
	s.storage[c.ID] = c
	slog.Debug("Saved comparison to in-memory storage", "id", c.ID)

	return c.ID, nil
}

func (s *InMemStorer) Get(ctx context.Context, id uuid.UUID) (*domain.Comparison, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	c, ok := s.storage[id]
	if !ok {
		return nil, fmt.Errorf("comparison %s: %w", id, storage.ErrNotFound)
	}
	return &c, nil
}

func (s *InMemStorer) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[domain.Comparison], error) {
	_ = page.Validate()

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	total := len(s.order)
	start := min(page.Offset(), total)
	end := min(start+page.Size, total)

	items := make([]domain.Comparison, 0, end-start)
	for i := start; i < end; i++ {
		// newest first
		items = append(items, s.storage[s.order[total-1-i]])
	}

	return pagination.NewOffsetResult(items, int64(total), page.Page, page.Size), nil
}
