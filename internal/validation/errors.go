package validation

import "net/http"

// MissingParamError reports a required field that is absent or empty.
type MissingParamError struct {
	Field string
}

func (e *MissingParamError) Error() string { return "Missing param: " + e.Field }

// HTTPCode returns the HTTP status code
func (e *MissingParamError) HTTPCode() int { return http.StatusBadRequest }

// ErrorCode returns the business error code
func (e *MissingParamError) ErrorCode() string { return "MISSING_PARAM" }

// Message returns the user-friendly error message
func (e *MissingParamError) Message() string { return e.Error() }

// Details names the offending field.
func (e *MissingParamError) Details() string { return e.Field }

// InvalidParamError reports a field whose value is present but not acceptable.
type InvalidParamError struct {
	Field string
}

func (e *InvalidParamError) Error() string { return "Invalid param: " + e.Field }

// HTTPCode returns the HTTP status code
func (e *InvalidParamError) HTTPCode() int { return http.StatusBadRequest }

// ErrorCode returns the business error code
func (e *InvalidParamError) ErrorCode() string { return "INVALID_PARAM" }

// Message returns the user-friendly error message
func (e *InvalidParamError) Message() string { return e.Error() }

// Details names the offending field.
func (e *InvalidParamError) Details() string { return e.Field }
