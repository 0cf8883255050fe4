// Package console prints user facing status lines and diagnostics.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/cairn/internal/ui/output"
	"go.trai.ch/cairn/internal/ui/style"
)

// verbWidth is the column the status verb is right aligned to.
const verbWidth = 12

// Console implements ports.Reporter.
type Console struct {
	mu    sync.Mutex
	w     io.Writer
	verb  lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	quiet bool
}

// New creates a Console writing to stderr.
func New() *Console {
	c := &Console{}
	c.SetOutput(os.Stderr)
	return c
}

// SetOutput redirects all output to w.
func (c *Console) SetOutput(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := output.NewRenderer(w)
	c.w = w
	c.verb = r.NewStyle().Foreground(style.Green).Bold(true)
	c.err = r.NewStyle().Foreground(style.Red).Bold(true)
	c.warn = r.NewStyle().Foreground(style.Yellow).Bold(true)
}

// SetQuiet suppresses status lines and warnings. Errors are always printed.
func (c *Console) SetQuiet(quiet bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quiet = quiet
}

// Status prints "<verb> <msg>" with the verb right aligned.
func (c *Console) Status(verb, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.quiet {
		return
	}
	pad := ""
	if n := verbWidth - len(verb); n > 0 {
		pad = strings.Repeat(" ", n)
	}
	_, _ = fmt.Fprintf(c.w, "%s%s %s\n", pad, c.verb.Render(verb), msg)
}

// Warn prints "warn: <msg>".
func (c *Console) Warn(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.quiet {
		return
	}
	_, _ = fmt.Fprintf(c.w, "%s %s\n", c.warn.Render("warn:"), msg)
}

// Error prints "error: <message>" for err.
func (c *Console) Error(err error) {
	if err == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, _ = fmt.Fprintf(c.w, "%s %s\n", c.err.Render("error:"), err.Error())
}
