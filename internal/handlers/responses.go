package handlers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"

	"finance-view/internal/errors"
	"finance-view/internal/filter"
	"finance-view/internal/models"
	"finance-view/internal/paginator"
	"finance-view/internal/repositories"
	"finance-view/internal/services"
	"finance-view/internal/validation"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and business logic errors (4xx responses)
//    Use cases:
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Not found errors: SendError(c, errors.TransactionNotFound)
//    - Filter errors: SendError(c, errors.ViewInvalidFilter)
//
// 2. SendSystemError - For system/internal errors (500 responses)
//    Use cases:
//    - Database errors from repositories
//    - Service layer internal errors
//    - Unexpected errors that should not expose internal details to client
//
// 3. SendServiceError - For errors returned by the services. Known sentinel
//    errors map to their codes, everything else goes through SendSystemError.
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions
//    - return err without wrapping - Use SendSystemError to protect internal details

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"

	// SessionIDContextKey is the context key the session middleware stores the session id under
	SessionIDContextKey = "session_id"
)

// SuccessResponse represents a standard success response
// Used for successful API responses with data, messages, and metadata
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	slog.Error("Internal error",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"error", err.Error(),
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendValidationError sends field level validator errors as VALIDATION_001
func SendValidationError(c echo.Context, err error) error {
	fields := validation.FieldErrors(err)
	if fields == nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	errorResponse := errors.NewValidationError(fields, getTraceID(c))
	return c.JSON(http.StatusBadRequest, errorResponse)
}

// serviceErrorCodes maps service and repository sentinel errors to error codes
var serviceErrorCodes = []struct {
	err  error
	code errors.ErrorCode
}{
	{repositories.ErrTransactionNotFound, errors.TransactionNotFound},
	{repositories.ErrCategoryNotFound, errors.CategoryNotFound},
	{repositories.ErrCategoryExists, errors.CategoryAlreadyExists},
	{services.ErrInvalidCategory, errors.CategoryInvalidName},
	{services.ErrDuplicateSubcategories, errors.ValidationGeneral},
	{services.ErrInvalidDate, errors.ValidationInvalidDate},
	{services.ErrInvalidDateRange, errors.ValidationInvalidDate},
	{services.ErrInvalidAmount, errors.TransactionInvalidAmount},
	{services.ErrInvalidAccountID, errors.ValidationInvalidID},
	{services.ErrUnknownAccount, errors.TransactionUnknownAccount},
	{services.ErrInvalidReportRange, errors.ValidationInvalidDate},
	{services.ErrReportRangeTooLong, errors.ValidationOutOfRange},
	{services.ErrUnknownCategory, errors.ViewInvalidFilter},
	{services.ErrUnknownSubcategory, errors.ViewInvalidFilter},
	{services.ErrInvalidPage, errors.ViewInvalidPage},
	{paginator.ErrInvalidPageSize, errors.ViewInvalidPageSize},
	{filter.ErrCustomRangeIncomplete, errors.ViewCustomRangeInvalid},
	{filter.ErrInvalidCustomDate, errors.ViewCustomRangeInvalid},
	{filter.ErrCustomRangeOrder, errors.ViewCustomRangeInvalid},
	{models.ErrInvalidTransactionType, errors.TransactionInvalidType},
	{context.Canceled, errors.ViewRenderInterrupted},
}

// SendServiceError maps a service error to its error response
func SendServiceError(c echo.Context, err error) error {
	for _, mapping := range serviceErrorCodes {
		if stderrors.Is(err, mapping.err) {
			return SendError(c, mapping.code, errors.WithDetails(err.Error()))
		}
	}
	return SendSystemError(c, err)
}
