package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DjordjeVuckovic/truth-compare/internal/apperr"
	"github.com/DjordjeVuckovic/truth-compare/internal/ast"
	"github.com/DjordjeVuckovic/truth-compare/internal/compiler"
	"github.com/DjordjeVuckovic/truth-compare/internal/domain"
	"github.com/DjordjeVuckovic/truth-compare/internal/dto"
	"github.com/DjordjeVuckovic/truth-compare/internal/storage"
	"github.com/DjordjeVuckovic/truth-compare/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CompareRouter struct {
	e       *echo.Echo
	store   storage.ComparisonStore
	options compiler.Options
}

type CompareRouterOption func(*CompareRouter)

func WithMaxVariables(n int) CompareRouterOption {
	return func(r *CompareRouter) {
		r.options.MaxVariables = n
	}
}

func NewCompareRouter(e *echo.Echo, store storage.ComparisonStore, opts ...CompareRouterOption) *CompareRouter {
	r := &CompareRouter{
		e:     e,
		store: store,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CompareRouter) Bind() {
	g := r.e.Group("/api/v1")
	g.POST("/compile", r.compileHandler)
	g.POST("/compare", r.compareHandler)
	g.POST("/comparisons", r.saveHandler)
	g.GET("/comparisons", r.listHandler)
	g.GET("/comparisons/:id", r.getHandler)
}

// compileHandler godoc
// @Summary Compile one expression
// @Description Returns the postfix form, variables, tree and LaTeX markup of a Boolean expression
// @Tags compile
// @Accept json
// @Produce json
// @Param request body dto.CompileRequest true "Expression"
// @Success 200 {object} dto.CompileResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/compile [post]
func (r *CompareRouter) compileHandler(c echo.Context) error {
	var req dto.CompileRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	expr, err := compiler.Compile(req.Expression)
	if err != nil {
		slog.Debug("Compile failed", "expression", req.Expression, "error", err)
		return err
	}

	return c.JSON(http.StatusOK, dto.CompileResponse{
		Text:      expr.Text,
		RPN:       expr.RPN.String(),
		Variables: expr.Variables,
		Tree:      ast.Print(expr.AST),
		Markup:    expr.Markup(),
	})
}

// compareHandler godoc
// @Summary Compare two expressions
// @Description Evaluates both expressions on every assignment of their variables and pages the truth table
// @Tags compare
// @Accept json
// @Produce json
// @Param request body dto.CompareRequest true "Expressions and paging"
// @Success 200 {object} dto.CompareResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/compare [post]
func (r *CompareRouter) compareHandler(c echo.Context) error {
	var req dto.CompareRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	resp, err := r.compare(req.Expression1, req.Expression2, req.DifferencesOnly, req.OffsetRequest)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

// saveHandler godoc
// @Summary Save a comparison
// @Tags comparisons
// @Accept json
// @Produce json
// @Param request body dto.SaveComparisonRequest true "Expressions"
// @Success 201 {object} dto.SaveComparisonResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/comparisons [post]
func (r *CompareRouter) saveHandler(c echo.Context) error {
	var req dto.SaveComparisonRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	res, err := r.run(req.Expression1, req.Expression2)
	if err != nil {
		return err
	}

	id, err := r.store.Save(c.Request().Context(), domain.Comparison{
		Expression1: req.Expression1,
		Expression2: req.Expression2,
		Variables:   res.Table.Variables,
		RowCount:    len(res.Table.Rows),
		Mismatches:  res.Table.Mismatches(),
		Equivalent:  res.Table.Equivalent(),
	})
	if err != nil {
		return fmt.Errorf("save comparison: %w", err)
	}

	slog.Info("Comparison saved", "id", id, "equivalent", res.Table.Equivalent())
	return c.JSON(http.StatusCreated, dto.SaveComparisonResponse{ID: id})
}

// getHandler godoc
// @Summary Get a saved comparison
// @Description Loads a saved comparison and recomputes its truth table
// @Tags comparisons
// @Produce json
// @Param id path string true "Comparison ID"
// @Param differences_only query bool false "Only rows where the expressions differ"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(100)
// @Success 200 {object} dto.StoredComparisonResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/comparisons/{id} [get]
func (r *CompareRouter) getHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid comparison id", err)
	}

	stored, err := r.store.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	differencesOnly, _ := strconv.ParseBool(c.QueryParam("differences_only"))
	resp, err := r.compare(stored.Expression1, stored.Expression2, differencesOnly, pageFromQuery(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.StoredComparisonResponse{Comparison: *stored, Result: *resp})
}

// listHandler godoc
// @Summary List saved comparisons
// @Tags comparisons
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(100)
// @Success 200 {object} pagination.OffsetResult[domain.Comparison]
// @Router /api/v1/comparisons [get]
func (r *CompareRouter) listHandler(c echo.Context) error {
	result, err := r.store.List(c.Request().Context(), pageFromQuery(c))
	if err != nil {
		return fmt.Errorf("list comparisons: %w", err)
	}
	return c.JSON(http.StatusOK, result)
}

func (r *CompareRouter) run(expr1, expr2 string) (*compiler.Result, error) {
	if expr1 == "" || expr2 == "" {
		return nil, apperr.NewValidation("expression1 and expression2 are required")
	}

	res := compiler.Compare(expr1, expr2, r.options)
	if res.Err != nil {
		slog.Debug("Compare failed", "expression1", expr1, "expression2", expr2, "error", res.Err)
		return nil, res.Err
	}
	return res, nil
}

func (r *CompareRouter) compare(expr1, expr2 string, differencesOnly bool, page pagination.OffsetRequest) (*dto.CompareResponse, error) {
	res, err := r.run(expr1, expr2)
	if err != nil {
		return nil, err
	}

	return &dto.CompareResponse{
		Variables:  res.Table.Variables,
		Markup1:    res.LeftMarkup,
		Markup2:    res.RightMarkup,
		Matches:    res.Table.Matches(),
		Mismatches: res.Table.Mismatches(),
		Equivalent: res.Table.Equivalent(),
		Rows:       pagination.Paginate(res.Rows(differencesOnly), page),
	}, nil
}

func pageFromQuery(c echo.Context) pagination.OffsetRequest {
	// Validate fills defaults for anything missing or invalid
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	return pagination.OffsetRequest{Page: page, Size: size}
}
