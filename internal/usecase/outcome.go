// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import domainerrors "authcore/internal/domain/errors"

// Outcome is the business result of a use case: either a granted value or a denial.
// Technical failures never travel in an Outcome; they are returned as errors next to it.
type Outcome[T any] struct {
	value  T
	reason *domainerrors.BaseError
}

// Granted wraps a successful value.
func Granted[T any](value T) Outcome[T] {
	return Outcome[T]{value: value}
}

// Denied builds a denial carrying the client-visible reason.
func Denied[T any](reason *domainerrors.BaseError) Outcome[T] {
	if reason == nil {
		reason = domainerrors.ErrAccessDenied
	}

	return Outcome[T]{reason: reason}
}

// Denied reports whether the use case said no.
func (o Outcome[T]) Denied() bool {
	return o.reason != nil
}

// Reason returns the denial reason, or nil when the outcome is granted.
func (o Outcome[T]) Reason() *domainerrors.BaseError {
	return o.reason
}

// Value returns the granted value. It is the zero value for a denial.
func (o Outcome[T]) Value() T {
	return o.value
}
