// Package logger provides a small prefixed, colored logger used by every
// subsystem. Each subsystem gets its own instance with a distinct prefix and
// color so interleaved output stays readable.
package logger

import (
	"errors"
	"io"
	"log"
)

const colorReset = "\033[0m"

// Logger writes leveled, prefixed log lines.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a Logger writing to out with the given prefix and ANSI color.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("logger prefix must not be empty")
	}
	if out == nil {
		return nil, errors.New("logger output must not be nil")
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(out, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print("INFO", msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.print("WARNING", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.print("ERROR", msg)
}

func (l *Logger) print(level, msg string) {
	l.out.Printf("%s[%s] [%s]%s %s", l.color, l.prefix, level, colorReset, msg)
}
