// Package errors is the error toolkit shared by the delivery and persistence layers.
// Sentinel checks go through the standard library; anything that crosses a layer boundary
// is annotated with a pkg/errors stack so the request decorator can persist where it failed.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with a stack trace and message. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// WithStack records the caller's stack on err unless it already carries one.
func WithStack(err error) error {
	if err == nil {
		return nil
	}

	var traced interface{ StackTrace() pkgerrors.StackTrace }
	if stderrors.As(err, &traced) {
		return err
	}

	return pkgerrors.WithStack(err)
}

// StackTrace renders err with every stack frame recorded along the wrap chain.
// Errors without a recorded stack render as their plain message.
func StackTrace(err error) string {
	if err == nil {
		return ""
	}

	return fmt.Sprintf("%+v", err)
}
