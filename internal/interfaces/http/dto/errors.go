package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal   = "ERR_INTERNAL"
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	ErrCodeValidation = "ERR_VALIDATION"
)

// Resource error codes
const (
	ErrCodeNotFound            = "ERR_NOT_FOUND"
	ErrCodeAlreadyExists       = "ERR_ALREADY_EXISTS"
	ErrCodeConflict            = "ERR_CONFLICT"
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// domainCodeHTTPStatus maps domain error codes to HTTP status codes. Codes
// missing from the map fall back to 422: the request was well-formed but the
// operation is not valid against the current state.
var domainCodeHTTPStatus = map[string]int{
	"NOT_FOUND":            http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"BATCH_IN_FLIGHT":      http.StatusConflict,

	"INVALID_BATCH_CODE":      http.StatusBadRequest,
	"INVALID_BATCH_NAME":      http.StatusBadRequest,
	"INVALID_BATCH_KIND":      http.StatusBadRequest,
	"INVALID_LABEL":           http.StatusBadRequest,
	"INVALID_ACCOUNT_STATUS":  http.StatusBadRequest,
	"INVALID_SOURCE_COLUMN":   http.StatusBadRequest,
	"INVALID_TARGET_FIELD":    http.StatusBadRequest,
	"INVALID_DATA_TYPE":       http.StatusBadRequest,
	"DUPLICATE_SOURCE_COLUMN": http.StatusBadRequest,
	"EMPTY_SHEET":             http.StatusBadRequest,
	"INVALID_INPUT":           http.StatusBadRequest,
	"INVALID_QUANTITY":        http.StatusBadRequest,
	"INVALID_AMOUNT":          http.StatusBadRequest,
	"INVALID_SALE_KIND":       http.StatusBadRequest,

	"NO_MAPPING_DEFINED":     http.StatusUnprocessableEntity,
	"UNSUPPORTED_BATCH_KIND": http.StatusUnprocessableEntity,
	"ROWS_ALREADY_ATTACHED":  http.StatusConflict,

	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,
	ErrCodeNotFound:   http.StatusNotFound,
	ErrCodeConflict:   http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status for a domain error code.
func GetHTTPStatus(code string) int {
	if status, ok := domainCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusUnprocessableEntity
}
