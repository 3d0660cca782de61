package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Store errors. ErrStoreUnavailable and ErrStorePermission both match ErrStore.
var (
	ErrStore            = errors.New("store operation failed")
	ErrStoreUnavailable = fmt.Errorf("store unavailable: %w", ErrStore)
	ErrStorePermission  = fmt.Errorf("store permission denied: %w", ErrStore)
	ErrSchemaMismatch   = fmt.Errorf("store schema mismatch: %w", ErrStore)
	ErrConfigMissing    = errors.New("configuration missing")
)

// NewStoreError wraps a failed remote call. The backing store's message is
// kept as the cause so it reaches the caller verbatim through GetFullError.
func NewStoreError(operation, entity string, cause error) *ApiErr {
	return newStoreErr(http.StatusBadGateway, ErrStore, operation, entity, cause)
}

func NewStoreUnavailableError(operation, entity string, cause error) *ApiErr {
	return newStoreErr(http.StatusServiceUnavailable, ErrStoreUnavailable, operation, entity, cause)
}

func NewStorePermissionError(operation, entity string, cause error) *ApiErr {
	return newStoreErr(http.StatusBadGateway, ErrStorePermission, operation, entity, cause)
}

func NewSchemaMismatchError(operation, entity string, cause error) *ApiErr {
	return newStoreErr(http.StatusBadGateway, ErrSchemaMismatch, operation, entity, cause)
}

func newStoreErr(status int, sentinel error, operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("failed to %s %s", operation, entity)
	if cause != nil {
		details = fmt.Sprintf("%s: %s", details, cause.Error())
	}
	return &ApiErr{
		StatusCode: status,
		err:        sentinel,
		Details:    details,
		Cause:      cause,
	}
}

func NewConfigMissingError(keys []string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigMissing,
		Details:    fmt.Sprintf("required environment variables not set: %v", keys),
	}
}

func IsStoreError(err error) bool {
	return errors.Is(err, ErrStore)
}

func IsStoreUnavailableError(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

func IsConfigMissingError(err error) bool {
	return errors.Is(err, ErrConfigMissing)
}
