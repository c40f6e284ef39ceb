package errors

import (
	"io"
	"log"
)

// LogHandler is an ErrorHandler that writes through a standard logger.
// Construct it with NewLogHandler or NewLogHandlerWithLogger.
type LogHandler struct {
	verbose bool
	logger  *log.Logger
}

// NewLogHandler returns a LogHandler writing to w. Verbose output adds the
// error kind and any stack trace.
func NewLogHandler(w io.Writer, verbose bool) *LogHandler {
	return NewLogHandlerWithLogger(log.New(w, "", log.LstdFlags), verbose)
}

// NewLogHandlerWithLogger returns a LogHandler writing through l, keeping
// its prefix and flags.
func NewLogHandlerWithLogger(l *log.Logger, verbose bool) *LogHandler {
	return &LogHandler{verbose: verbose, logger: l}
}

// HandleError logs a GooeyError.
func (h *LogHandler) HandleError(err *GooeyError) {
	if err == nil {
		return
	}
	if !h.verbose {
		h.logger.Printf("[gooey error] %s: %v", err.Op, err.Err)
		return
	}
	h.logger.Printf("[gooey error] %s [%s]: %v", err.Op, err.Kind, err.Err)
	h.stack(err.StackTrace)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.logger.Printf("[gooey panic] %v", err)
	if h.verbose {
		h.stack(err.StackTrace)
	}
}

func (h *LogHandler) stack(trace string) {
	if trace != "" {
		h.logger.Printf("stack:\n%s", trace)
	}
}
