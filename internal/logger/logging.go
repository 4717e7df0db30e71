// Package logger provides modifications to charmbracelet/log's default logger to be used in various files/packages.
//
// Everything writes to stderr by default: stdout belongs to the msgpack stream in serve mode.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu     sync.RWMutex
	output io.Writer = os.Stderr
)

// SetOutput redirects the global logger and every logger created afterwards.
func SetOutput(w io.Writer) {
	mu.Lock()
	output = w
	mu.Unlock()
	log.SetOutput(w)
}

// Output returns the writer loggers are currently created with.
func Output() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return output
}

// New creates a new default charm log.
func New(prefix string) *log.Logger {
	return log.NewWithOptions(Output(), log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: true,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}
