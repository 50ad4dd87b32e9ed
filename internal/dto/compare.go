package dto

import (
	"github.com/DjordjeVuckovic/truth-compare/internal/domain"
	"github.com/DjordjeVuckovic/truth-compare/internal/truthtable"
	"github.com/DjordjeVuckovic/truth-compare/pkg/pagination"
	"github.com/google/uuid"
)

type CompileRequest struct {
	Expression string `json:"expression"`
}

type CompileResponse struct {
	Text      string   `json:"text"`
	RPN       string   `json:"rpn"`
	Variables []string `json:"variables"`
	Tree      string   `json:"tree"`
	Markup    string   `json:"markup"`
}

type CompareRequest struct {
	Expression1     string `json:"expression1"`
	Expression2     string `json:"expression2"`
	DifferencesOnly bool   `json:"differences_only"`
	pagination.OffsetRequest
}

type CompareResponse struct {
	Variables  []string                                 `json:"variables"`
	Markup1    string                                   `json:"markup1"`
	Markup2    string                                   `json:"markup2"`
	Matches    int                                      `json:"matches"`
	Mismatches int                                      `json:"mismatches"`
	Equivalent bool                                     `json:"equivalent"`
	Rows       *pagination.OffsetResult[truthtable.Row] `json:"rows"`
}

type SaveComparisonRequest struct {
	Expression1 string `json:"expression1"`
	Expression2 string `json:"expression2"`
}

type SaveComparisonResponse struct {
	ID uuid.UUID `json:"id"`
}

type StoredComparisonResponse struct {
	Comparison domain.Comparison `json:"comparison"`
	Result     CompareResponse   `json:"result"`
}
