package controller

import (
	"net/http"

	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/errors"
)

// Class groups status codes the way callers branch on them.
type Class int

const (
	ClassSuccess Class = iota
	ClassClientError
	ClassAccessDenied
	ClassServerError
)

// Response is the envelope every controller produces.
type Response struct {
	StatusCode int
	Body       any
	// Err is the failure behind a non-success response. For server errors it is the
	// unexpected cause and is never sent to the client.
	Err error
}

// Class classifies the response by status code.
func (r *Response) Class() Class {
	switch {
	case r.StatusCode >= http.StatusInternalServerError:
		return ClassServerError
	case r.StatusCode == http.StatusUnauthorized || r.StatusCode == http.StatusForbidden:
		return ClassAccessDenied
	case r.StatusCode >= http.StatusBadRequest:
		return ClassClientError
	default:
		return ClassSuccess
	}
}

// IsServerError reports whether the response stands for an unexpected failure.
func (r *Response) IsServerError() bool {
	return r.Class() == ClassServerError
}

// OK 200
func OK(body any) *Response {
	return &Response{StatusCode: http.StatusOK, Body: body}
}

// BadRequest 400, carrying the validation error that names the field.
func BadRequest(err error) *Response {
	return &Response{StatusCode: http.StatusBadRequest, Err: err}
}

// Forbidden 403, carrying the denial reason.
func Forbidden(reason *domainerrors.BaseError) *Response {
	if reason == nil {
		reason = domainerrors.ErrAccessDenied
	}

	return &Response{StatusCode: http.StatusForbidden, Err: reason}
}

// ServerError 500. The cause keeps its stack trace for the error log; the body stays generic.
func ServerError(err error) *Response {
	if err == nil {
		err = errors.New("unknown server error")
	}

	return &Response{
		StatusCode: http.StatusInternalServerError,
		Body:       nil,
		Err:        errors.WithStack(err),
	}
}
