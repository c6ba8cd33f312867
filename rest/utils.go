package rest

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"unmute/utils/errors"
	"unmute/utils/logger"
	"unmute/validation"
)

// handleError maps engine errors onto the HTTP surface. Validation failures
// are the caller's fault; a total fetch failure is retryable; everything
// else is an internal error.
func handleError(c echo.Context, err error, operation string) error {
	logger.SafeErrorContext(c.Request().Context(), "request handler error",
		"operation", operation,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err,
	)

	if verr, ok := validation.AsValidationError(err); ok {
		return c.JSON(http.StatusBadRequest, &ErrorResponse{
			Error: verr.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	switch {
	case errors.IsValidationError(err):
		return c.JSON(http.StatusBadRequest, &ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	case errors.IsSessionNotFound(err):
		return c.JSON(http.StatusNotFound, &ErrorResponse{
			Error: "feed session not found",
			Code:  "SESSION_NOT_FOUND",
		})
	case stderrors.Is(err, errors.ErrSessionBusy):
		return c.JSON(http.StatusConflict, &ErrorResponse{
			Error: "a fetch is already in flight for this session",
			Code:  "SESSION_BUSY",
		})
	case errors.IsTotalFetchFailure(err):
		return c.JSON(http.StatusServiceUnavailable, &ErrorResponse{
			Error:     "all feed sources failed",
			Code:      "TOTAL_FETCH_FAILURE",
			Retryable: true,
		})
	}

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return c.JSON(http.StatusInternalServerError, &ErrorResponse{
			Error:     appErr.Message,
			Code:      string(appErr.Code),
			Retryable: errors.IsRetryable(err),
		})
	}

	return c.JSON(http.StatusInternalServerError, &ErrorResponse{
		Error: "internal server error",
	})
}
