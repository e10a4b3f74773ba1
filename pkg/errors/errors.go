// Package errors provides structured error handling and diagnostics for the
// motion animation engine.
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
	// KindStaleHandle indicates an operation on a retired or removed animation.
	KindStaleHandle
	// KindStoryboard indicates a storyboard parsing or wiring failure.
	KindStoryboard
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindStaleHandle:
		return "stale-handle"
	case KindStoryboard:
		return "storyboard"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// MotionError represents a structured error in the motion engine.
type MotionError struct {
	// Op is the operation that failed (e.g., "animation.Handle.Curve").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Animation is a rendering of the animation id involved, if applicable.
	Animation string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *MotionError) Error() string {
	if e.Animation != "" {
		return fmt.Sprintf("%s [%s] animation=%s: %v", e.Op, e.Kind, e.Animation, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *MotionError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.StepTickers").
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

// StaleHandleError reports an attempt to configure or query an animation that
// is no longer present in its animator's storage. These are non-fatal: the
// calling operation becomes a no-op.
type StaleHandleError struct {
	// Animation is a rendering of the stale animation id.
	Animation string
}

func (e *StaleHandleError) Error() string {
	return fmt.Sprintf("animation %s has retired", e.Animation)
}

// StoryboardError represents a failure to parse or wire a storyboard.
type StoryboardError struct {
	// Name is the storyboard animation entry at fault, if known.
	Name string
	// Field is the offending field within the entry.
	Field string
	// Err is the underlying error.
	Err error
}

func (e *StoryboardError) Error() string {
	switch {
	case e.Name != "" && e.Field != "":
		return fmt.Sprintf("storyboard animation %q field %q: %v", e.Name, e.Field, e.Err)
	case e.Name != "":
		return fmt.Sprintf("storyboard animation %q: %v", e.Name, e.Err)
	default:
		return fmt.Sprintf("storyboard: %v", e.Err)
	}
}

func (e *StoryboardError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the motion engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *MotionError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
