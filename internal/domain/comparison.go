package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comparison is a saved pair of expressions together with the summary of
// their last evaluation. Rows are not stored; they are recomputed on read.
type Comparison struct {
	ID          uuid.UUID `json:"id"`
	Expression1 string    `json:"expression1"`
	Expression2 string    `json:"expression2"`
	Variables   []string  `json:"variables"`
	RowCount    int       `json:"rowCount"`
	Mismatches  int       `json:"mismatches"`
	Equivalent  bool      `json:"equivalent"`
	CreatedAt   time.Time `json:"createdAt"`
}
