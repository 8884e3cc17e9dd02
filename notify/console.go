package notify

import (
	"fmt"
	"io"
	"os"
)

// Console writes notices as single colored lines to a writer (stderr by
// default, so notices never mix with table output on stdout). Wrap it in
// NewDeduped to get toast-style coalescing.
type Console struct {
	out   io.Writer
	color bool
}

// ConsoleOption defines a function type to modify the Console instance.
type ConsoleOption func(*Console)

// WithWriter redirects notice output (primarily for testing).
func WithWriter(w io.Writer) ConsoleOption {
	return func(c *Console) {
		c.out = w
	}
}

// WithColor toggles ANSI colors.
func WithColor(enabled bool) ConsoleOption {
	return func(c *Console) {
		c.color = enabled
	}
}

var _ Notifier = (*Console)(nil)

// NewConsole creates a terminal notifier.
func NewConsole(options ...ConsoleOption) *Console {
	c := &Console{
		out:   os.Stderr,
		color: true,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *Console) Info(id, message string) {
	c.emit("\033[36m", "•", message)
}

func (c *Console) Success(id, message string) {
	c.emit("\033[32m", "✓", message)
}

func (c *Console) Error(id, message string) {
	c.emit("\033[31m", "✗", message)
}

func (c *Console) emit(colorCode, mark, message string) {
	if c.color {
		fmt.Fprintf(c.out, "%s%s %s\033[0m\n", colorCode, mark, message)
		return
	}
	fmt.Fprintf(c.out, "%s %s\n", mark, message)
}
