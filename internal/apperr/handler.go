package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrNotFound is returned by stores when a record does not exist.
var ErrNotFound = errors.New("not found")

// IsCompileError reports whether err comes from compiling or evaluating an expression.
func IsCompileError(err error) bool {
	var (
		se *SyntaxError
		pe *MismatchedParenthesesError
		me *MalformedExpressionError
		ue *UndefinedVariableError
	)
	return errors.As(err, &se) || errors.As(err, &pe) || errors.As(err, &me) || errors.As(err, &ue)
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Error(), "title": "validation error"})
			return
		}

		var te *TooManyVariablesError
		if errors.As(err, &te) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": te.Error(), "title": "table too large"})
			return
		}

		if IsCompileError(err) {
			_ = c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error(), "title": "compile error"})
			return
		}

		if errors.Is(err, ErrNotFound) {
			_ = c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
