// Package errors provides structured error handling for controls.
//
// Programming mistakes (using the base type without a concrete widget type,
// calling a parent method that was never defined, building cyclic trees)
// panic with a *ControlError. Recoverable failures that no caller consumes,
// such as a plugin failing to release its resources during disposal, are
// sent to the global ErrorHandler through Report.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindContract indicates misuse of the control contract.
	KindContract
	// KindLookup indicates a missing method on a parent delegate call.
	KindLookup
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindScan indicates a declarative child scan failure.
	KindScan
	// KindPlugin indicates a plugin activation or teardown failure.
	KindPlugin
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindLookup:
		return "lookup"
	case KindConfig:
		return "config"
	case KindScan:
		return "scan"
	case KindPlugin:
		return "plugin"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ControlError represents a structured error raised by a control operation.
type ControlError struct {
	// Op is the operation that failed (e.g., "control.CallParent").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Control is the identifier of the control involved, if known.
	Control string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ControlError) Error() string {
	if e.Control != "" {
		return fmt.Sprintf("%s [%s] control=%s: %v", e.Op, e.Kind, e.Control, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ControlError) Unwrap() error {
	return e.Err
}

// Contract builds a KindContract error. Callers panic with the result.
func Contract(op, control, format string, args ...any) *ControlError {
	return &ControlError{
		Op:        op,
		Kind:      KindContract,
		Control:   control,
		Err:       fmt.Errorf(format, args...),
		Timestamp: time.Now(),
	}
}

// Lookup builds a KindLookup error for a method missing on a parent.
func Lookup(op, control, method string) *ControlError {
	return &ControlError{
		Op:        op,
		Kind:      KindLookup,
		Control:   control,
		Err:       fmt.Errorf("parent has no method %q", method),
		Timestamp: time.Now(),
	}
}

// KindOf returns the kind of err if it is a *ControlError, or KindUnknown.
func KindOf(err error) ErrorKind {
	var ce *ControlError
	if As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "browse.action").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by controls and their collaborators.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ControlError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
