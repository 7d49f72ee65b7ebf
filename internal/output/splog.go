// Package output provides user-facing printing and run logging for repovault.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Splog provides structured logging and output
type Splog struct {
	writer    io.Writer
	errWriter io.Writer
	verbose   bool
	color     bool
	file      *FileLog
}

// Option configures a Splog
type Option func(*Splog)

// WithVerbose enables debug output
func WithVerbose(verbose bool) Option {
	return func(s *Splog) { s.verbose = verbose }
}

// WithFileLog mirrors output into a FileLog
func WithFileLog(file *FileLog) Option {
	return func(s *Splog) { s.file = file }
}

// WithWriters overrides the output writers (used by tests)
func WithWriters(out, errOut io.Writer) Option {
	return func(s *Splog) {
		s.writer = out
		s.errWriter = errOut
		s.color = false
	}
}

// NewSplog creates a new splog instance writing to stdout/stderr.
// Color is enabled only when stdout is a terminal.
func NewSplog(opts ...Option) *Splog {
	s := &Splog{
		writer:    os.Stdout,
		errWriter: os.Stderr,
		color:     isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, format+"\n", args...)
	s.file.log(levelInfo, format, args...)
}

// Success writes a success message
func (s *Splog) Success(format string, args ...interface{}) {
	fmt.Fprintln(s.writer, s.render(successStyle, fmt.Sprintf(format, args...)))
	s.file.log(levelInfo, format, args...)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	fmt.Fprintln(s.writer, s.render(warnStyle, "warning: "+fmt.Sprintf(format, args...)))
	s.file.log(levelWarn, format, args...)
}

// Error writes an error message to stderr and the error log
func (s *Splog) Error(format string, args ...interface{}) {
	fmt.Fprintln(s.errWriter, s.render(errorStyle, "error: "+fmt.Sprintf(format, args...)))
	s.file.logError(format, args...)
}

// Debug writes a debug message, shown only in verbose mode
func (s *Splog) Debug(format string, args ...interface{}) {
	if s.verbose {
		fmt.Fprintln(s.writer, s.render(dimStyle, fmt.Sprintf(format, args...)))
	}
	s.file.log(levelDebug, format, args...)
}

// Tip writes a tip message
func (s *Splog) Tip(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, "tip: "+format+"\n", args...)
}

// Newline writes a newline
func (s *Splog) Newline() {
	fmt.Fprintln(s.writer)
}
