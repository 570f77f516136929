// Package errors provides error handling utilities for the engine.
//
// This file contains panic recovery utilities used at the loss handle
// boundary: apply-update kernels and registered zone factories must surface
// failures as errors, never as panics crossing the boundary.

package errors

import (
	"fmt"
	"runtime/debug"
)

// PanicError is the error form of a panic caught at the handle boundary.
type PanicError struct {
	// PanicValue is the value the kernel or factory passed to panic().
	PanicValue interface{}

	// StackTrace is the goroutine stack captured at recovery time.
	StackTrace string

	// Operation names the boundary that caught the panic, e.g. "apply_update".
	Operation string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// Unwrap returns nil. A recovered panic has no underlying error chain.
func (e *PanicError) Unwrap() error {
	return nil
}

// String renders the error together with the captured stack trace.
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s",
		e.Operation, e.PanicValue, e.StackTrace)
}

// NewPanicError captures the current stack and pairs it with the panic value.
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
		Operation:  operation,
	}
}

// Recover converts a panic into an error when used with defer. Call it with
// a pointer to the error return value of the enclosing function:
//
//	func (h *Handle) ApplyUpdate(batch *UpdateBatch) (err error) {
//	    defer errors.Recover(&err, "apply_update")
//	    // ... kernel dispatch ...
//	    return nil
//	}
//
// If the function already carries an error when the panic fires, the panic
// information wraps the existing error.
func Recover(err *error, operation string) {
	if r := recover(); r != nil {
		panicErr := NewPanicError(operation, r)

		if *err != nil {
			*err = fmt.Errorf("panic in %s: %v (original error: %w)",
				operation, r, *err)
		} else {
			*err = panicErr
		}
	}
}

// SafeExecute executes fn and recovers from any panic, converting it to an
// error. The registry uses it to guard externally registered zone factories.
//
// Example:
//
//	err := SafeExecute("create_loss", func() error {
//	    handle, err = factory(cfg, spec)
//	    return err
//	})
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
