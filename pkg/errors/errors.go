// Package errors provides structured error reporting for gooey.
//
// The widget and animation core has no recoverable errors. The packages
// around it (scene loading, scripting, frame encoding, the CLI host) report
// problems here so a host can route them to a log without threading error
// returns through the frame loop.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindConfig indicates a settings load failure.
	KindConfig ErrorKind = iota + 1
	// KindScene indicates an invalid scene description.
	KindScene
	// KindScript indicates a scripted animation failure.
	KindScript
	// KindSchedule indicates an animation that can never advance.
	KindSchedule
	// KindRender indicates a frame presentation or encoding error.
	KindRender
)

var kindNames = [...]string{
	KindConfig:   "config",
	KindScene:    "scene",
	KindScript:   "script",
	KindSchedule: "schedule",
	KindRender:   "render",
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ErrNonPositiveDelay marks a countdown armed with a zero or negative delay.
// Such a countdown never fires.
var ErrNonPositiveDelay = errors.New("non-positive animation delay")

// GooeyError is a structured error reported through the global handler.
type GooeyError struct {
	// Op is the operation that failed (e.g., "animation.Manager.Add").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *GooeyError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *GooeyError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "terminal.Model.Frame").
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

// ParseError represents a field in a scene or settings document that could
// not be interpreted.
type ParseError struct {
	// Source names the document (file path or "<reader>").
	Source string
	// Field is the dotted path of the offending field.
	Field string
	// Got is the value that was rejected.
	Got any
	// Err is the underlying reason, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid %s %v: %v", e.Source, e.Field, e.Got, e.Err)
	}
	return fmt.Sprintf("%s: invalid %s: got %v", e.Source, e.Field, e.Got)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by gooey packages.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *GooeyError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
