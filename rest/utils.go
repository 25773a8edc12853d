package rest

import (
	stderrors "errors"
	"fmt"

	"marketbrief/domain"
	"marketbrief/utils/errors"
	"marketbrief/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError converts errors to HTTP responses. Domain sentinels map to
// their stable codes; anything unrecognized becomes an opaque 500 so internal
// detail stays in the logs.
func handleError(c echo.Context, err error, operation string) error {
	appErr := classifyError(err, operation)

	logger.Logger.Error("request failed",
		"error", appErr.Error(),
		"error_code", appErr.Code,
		"operation", operation,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"request_id", c.Response().Header().Get("X-Request-ID"),
	)

	return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
}

func classifyError(err error, operation string) *errors.AppError {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stderrors.Is(err, domain.ErrSummaryNotFound):
		return errors.NotFoundError("summary not found", err, map[string]interface{}{"operation": operation})
	case stderrors.Is(err, domain.ErrSymbolNotFound):
		return errors.NotFoundError("symbol not found", err, map[string]interface{}{"operation": operation})
	case stderrors.Is(err, domain.ErrSummaryInvalid):
		return errors.ValidationError("invalid summary", map[string]interface{}{"operation": operation})
	case stderrors.Is(err, domain.ErrMarketDataTimeout):
		return errors.TimeoutError("market data provider timed out", err, map[string]interface{}{"operation": operation})
	case stderrors.Is(err, domain.ErrMarketDataUnavailable):
		return errors.ExternalAPIError("market data provider unavailable", err, map[string]interface{}{"operation": operation})
	default:
		return errors.UnknownError("internal server error", err, map[string]interface{}{"operation": operation})
	}
}

// handleValidationError responds 400 for malformed request input.
func handleValidationError(c echo.Context, message, field string, value interface{}) error {
	validationErr := errors.ValidationError(message, map[string]interface{}{
		"field": field,
		"value": fmt.Sprintf("%v", value),
	})

	logger.Logger.Warn("request validation failed",
		"error", validationErr.Error(),
		"field", field,
		"path", c.Request().URL.Path,
	)

	return c.JSON(validationErr.HTTPStatusCode(), validationErr.ToHTTPResponse())
}
