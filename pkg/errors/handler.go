package errors

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// handlerSlot lets an interface value live in an atomic.Pointer.
type handlerSlot struct{ h ErrorHandler }

var current atomic.Pointer[handlerSlot]

func init() {
	current.Store(&handlerSlot{h: NewLogHandler(os.Stderr, false)})
}

// SetHandler installs h as the handler every report goes to and returns the
// previous one so tests can restore it. Nil installs a non-verbose
// LogHandler on stderr.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = NewLogHandler(os.Stderr, false)
	}
	return current.Swap(&handlerSlot{h: h}).h
}

// Handler returns the installed handler.
func Handler() ErrorHandler {
	return current.Load().h
}

// Report stamps err with the current time if it has none and passes it to
// the installed handler.
func Report(err *GooeyError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// Recover reports a panic in progress as a PanicError for op. It must be
// called directly by a deferred statement:
//
//	defer errors.Recover("terminal.Model.Frame")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	Handler().HandlePanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack formats the stack of its caller's caller, one
// "function file:line" entry per line. The frame calling CaptureStack is
// left out, so a helper that reports on behalf of an operation shows where
// the operation was invoked.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	pcs = pcs[:runtime.Callers(3, pcs)]
	if len(pcs) == 0 {
		return ""
	}
	var b strings.Builder
	frames := runtime.CallersFrames(pcs)
	for f, more := frames.Next(); ; f, more = frames.Next() {
		fmt.Fprintf(&b, "%s %s:%d\n", f.Function, f.File, f.Line)
		if !more {
			return b.String()
		}
	}
}
