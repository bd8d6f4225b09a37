// Package apierrors holds errors that are safe to show to API clients.
package apierrors

import (
	"errors"
	"net/http"
)

// Error codes.
const (
	CodeValidation           = "validation"
	CodeMalformedCredentials = "malformed_credentials"
	CodeInvalidCredentials   = "invalid_credentials"
	CodeUnauthenticated      = "unauthenticated"
	CodeNotFound             = "not_found"
	CodeParentNotFound       = "parent_not_found"
	CodeParentNotFolder      = "parent_not_folder"
	CodeConflict             = "conflict"
	CodeInvalidOperation     = "invalid_operation"
)

// APIError is an error with a client-facing message and HTTP status.
type APIError struct {
	Code       string
	Message    string
	HTTPStatus int
}

func (e *APIError) Error() string {
	return e.Message
}

// Is matches any APIError with the same code.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinels for errors.Is checks.
var (
	ErrValidation           = &APIError{Code: CodeValidation}
	ErrMalformedCredentials = &APIError{Code: CodeMalformedCredentials}
	ErrInvalidCredentials   = &APIError{Code: CodeInvalidCredentials}
	ErrUnauthenticated      = &APIError{Code: CodeUnauthenticated}
	ErrNotFound             = &APIError{Code: CodeNotFound}
	ErrParentNotFound       = &APIError{Code: CodeParentNotFound}
	ErrParentNotFolder      = &APIError{Code: CodeParentNotFolder}
	ErrConflict             = &APIError{Code: CodeConflict}
	ErrInvalidOperation     = &APIError{Code: CodeInvalidOperation}
)

// NewErrMissing reports an absent required field.
func NewErrMissing(field string) *APIError {
	return &APIError{Code: CodeValidation, Message: "Missing " + field, HTTPStatus: http.StatusBadRequest}
}

// NewErrInvalidData reports file content that is not valid base64.
func NewErrInvalidData() *APIError {
	return &APIError{Code: CodeValidation, Message: "Invalid data", HTTPStatus: http.StatusBadRequest}
}

func NewErrMalformedCredentials() *APIError {
	return &APIError{Code: CodeMalformedCredentials, Message: "Unauthorized", HTTPStatus: http.StatusUnauthorized}
}

func NewErrInvalidCredentials() *APIError {
	return &APIError{Code: CodeInvalidCredentials, Message: "Unauthorized", HTTPStatus: http.StatusUnauthorized}
}

func NewErrUnauthenticated() *APIError {
	return &APIError{Code: CodeUnauthenticated, Message: "Unauthorized", HTTPStatus: http.StatusUnauthorized}
}

func NewErrNotFound() *APIError {
	return &APIError{Code: CodeNotFound, Message: "Not found", HTTPStatus: http.StatusNotFound}
}

func NewErrParentNotFound() *APIError {
	return &APIError{Code: CodeParentNotFound, Message: "Parent not found", HTTPStatus: http.StatusBadRequest}
}

func NewErrParentNotFolder() *APIError {
	return &APIError{Code: CodeParentNotFolder, Message: "Parent is not a folder", HTTPStatus: http.StatusBadRequest}
}

// NewErrAlreadyExists reports a registration with a taken email.
func NewErrAlreadyExists() *APIError {
	return &APIError{Code: CodeConflict, Message: "Already exist", HTTPStatus: http.StatusBadRequest}
}

// NewErrFolderHasNoContent reports a content request for a folder.
func NewErrFolderHasNoContent() *APIError {
	return &APIError{Code: CodeInvalidOperation, Message: "A folder doesn't have content", HTTPStatus: http.StatusBadRequest}
}

// As extracts an *APIError from err's chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
