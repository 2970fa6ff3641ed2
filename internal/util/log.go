// ABOUTME: Structured logger construction shared by all components
// ABOUTME: Wraps charmbracelet/log with per-component prefixes and a global level
package util

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	logMu     sync.Mutex
	logLevel  = log.InfoLevel
	logOutput io.Writer = os.Stderr
	loggers   = map[string]*log.Logger{}
)

// NewLogger returns the stderr logger for a component prefix. Components
// share one logger however many engines ask for it.
func NewLogger(component string) *log.Logger {
	logMu.Lock()
	defer logMu.Unlock()

	if l, ok := loggers[component]; ok {
		return l
	}
	l := log.NewWithOptions(logOutput, log.Options{
		Prefix:          component,
		Level:           logLevel,
		ReportTimestamp: false,
	})
	loggers[component] = l
	return l
}

// SetLogLevel parses a level name and applies it to every logger created
// so far and all future ones. Unknown names fall back to info.
func SetLogLevel(level string) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = log.InfoLevel
	}

	logMu.Lock()
	defer logMu.Unlock()

	logLevel = lvl
	for _, l := range loggers {
		l.SetLevel(lvl)
	}
}

// SetLogOutput redirects every logger, used by tests and quiet mode
func SetLogOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()

	logOutput = w
	for _, l := range loggers {
		l.SetOutput(w)
	}
}
