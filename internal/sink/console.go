package sink

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-wordwrap"

	"github.com/roach88/ease/internal/logger"
)

// ColorMode controls console coloring.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Console writes entries for people reading a terminal: the site header is
// faint, error bodies are red and long bodies may be wrapped.
type Console struct {
	Out   io.Writer
	Color bool
	// Wrap is the body width in columns; 0 disables wrapping.
	Wrap uint

	mu sync.Mutex
}

// NewConsole creates a console sink writing to out. With ColorAuto, color
// is used only when out is a terminal.
func NewConsole(out io.Writer, mode ColorMode, wrap uint) *Console {
	return &Console{
		Out:   out,
		Color: useColor(out, mode),
		Wrap:  wrap,
	}
}

func useColor(out io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// Write implements logger.Sink.
func (c *Console) Write(e logger.Entry) {
	header := " " + e.Site.String() + ":"
	body := e.Message
	if c.Wrap > 0 {
		body = wordwrap.WrapString(body, c.Wrap)
	}

	if c.Color {
		header = aurora.Faint(header).String()
		if e.Level == logger.LevelError {
			lines := strings.Split(body, "\n")
			for i, line := range lines {
				lines[i] = aurora.Red(line).String()
			}
			body = strings.Join(lines, "\n")
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintf(c.Out, "%s\n%s\n", header, body)
}
