// Package logging provides a leveled logger with an optional file sink.
//
// While the interactive UI is running it owns the terminal, so console
// output is disabled and the file is the only sink; check mode enables
// console output since no UI is active there.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/backmassage/mediascope/internal/config"
	"github.com/backmassage/mediascope/internal/term"
)

// Logger writes timestamped, leveled lines to an optional log file and,
// when console output is enabled, to stdout/stderr with ANSI colors.
type Logger struct {
	mu      sync.Mutex
	console bool
	verbose bool
	file    *os.File
}

// NewLogger opens cfg.LogFile (if set) for appending. console selects
// whether lines are also written to the terminal; pass false whenever the
// UI is about to take over the screen. Call Close when done.
func NewLogger(cfg *config.Config, console bool) (*Logger, error) {
	l := &Logger{console: console, verbose: cfg.Verbose}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level, color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	plain := ts + " [" + level + "] " + text + "\n"

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.console {
		out := os.Stdout
		if level == "ERROR" {
			out = os.Stderr
		}
		if color != "" {
			_, _ = io.WriteString(out, ts+" "+color+"["+level+"]"+term.NC+" "+text+"\n")
		} else {
			_, _ = io.WriteString(out, plain)
		}
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, plain)
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.Blue, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), also to stderr when console is enabled.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.Red, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose was configured.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", term.Cyan, fmt.Sprintf(format, args...))
}
