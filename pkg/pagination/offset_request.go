package pagination

import "math"

// OffsetRequest represents an offset-based pagination request
type OffsetRequest struct {
	Page int `json:"page" query:"page" validate:"min=1"`
	Size int `json:"size" query:"size" validate:"min=1,max=100"`
}

// Validate validates and normalizes offset pagination parameters
func (r *OffsetRequest) Validate() error {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
	// keeps Offset from overflowing for client supplied pages
	if maxPage := math.MaxInt / r.Size; r.Page > maxPage {
		r.Page = maxPage
	}
	return nil
}

// Offset is the number of items skipped before the requested page.
func (r *OffsetRequest) Offset() int {
	return (r.Page - 1) * r.Size
}
