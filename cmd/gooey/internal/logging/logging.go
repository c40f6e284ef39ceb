// Package logging sets up the gooey log: a size-rotated file tagged with a
// per-process session id, wired into the global error handler.
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/go-gooey/gooey/pkg/errors"
)

// Logger is the process logger.
type Logger struct {
	*log.Logger

	// Session identifies this process in a shared log file.
	Session string

	file *lumberjack.Logger
	prev errors.ErrorHandler
}

// Open returns a logger writing to path, rotating at 10 MB. An empty path
// logs to stderr.
func Open(path string) (*Logger, error) {
	session := uuid.NewString()
	var w io.Writer = os.Stderr
	var file *lumberjack.Logger
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		file = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		}
		w = file
	}
	return &Logger{
		Logger:  log.New(w, "["+session[:8]+"] ", log.LstdFlags|log.Lmsgprefix),
		Session: session,
		file:    file,
	}, nil
}

// Install makes l the destination of errors reported by gooey packages.
// Verbose logging adds error kinds and stack traces.
func (l *Logger) Install(verbose bool) {
	l.prev = errors.SetHandler(errors.NewLogHandlerWithLogger(l.Logger, verbose))
}

// Close restores the handler that was installed before Install and closes
// the log file.
func (l *Logger) Close() error {
	if l.prev != nil {
		errors.SetHandler(l.prev)
		l.prev = nil
	}
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
