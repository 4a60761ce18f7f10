package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Session error codes (SESSION_*)
const (
	SessionInvalid     ErrorCode = "SESSION_001"
	SessionExpired     ErrorCode = "SESSION_002"
	SessionUnavailable ErrorCode = "SESSION_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidID     ErrorCode = "VALIDATION_006"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionInvalidType      ErrorCode = "TRANSACTION_003"
	TransactionValidationFailed ErrorCode = "TRANSACTION_004"
	TransactionUnknownAccount   ErrorCode = "TRANSACTION_005"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryInvalidName   ErrorCode = "CATEGORY_003"
)

// View error codes (VIEW_*)
const (
	ViewInvalidFilter      ErrorCode = "VIEW_001"
	ViewCustomRangeInvalid ErrorCode = "VIEW_002"
	ViewInvalidPageSize    ErrorCode = "VIEW_003"
	ViewInvalidPage        ErrorCode = "VIEW_004"
	ViewRenderInterrupted  ErrorCode = "VIEW_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	SessionInvalid:     "Session cookie is invalid",
	SessionExpired:     "Session has expired",
	SessionUnavailable: "Session storage is unavailable",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidID:     "Invalid identifier format",

	TransactionNotFound:         "Transaction not found",
	TransactionInvalidAmount:    "Invalid transaction amount",
	TransactionInvalidType:      "Invalid transaction type",
	TransactionValidationFailed: "Transaction validation failed",
	TransactionUnknownAccount:   "Transaction references an unknown account",

	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "A category with this name already exists",
	CategoryInvalidName:   "Category name is required",

	ViewInvalidFilter:      "Invalid filter value",
	ViewCustomRangeInvalid: "Invalid custom date range",
	ViewInvalidPageSize:    "Page size must be a positive number or \"all\"",
	ViewInvalidPage:        "Invalid page number",
	ViewRenderInterrupted:  "Loading transactions was interrupted",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
