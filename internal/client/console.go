package client

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	consoleLabel   = lipgloss.NewStyle().Bold(true)
	consoleFaint   = lipgloss.NewStyle().Faint(true)
	consoleFailure = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	consoleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// Console is the non-interactive [Frontend]: it prints one line per update.
type Console struct {
	mu  sync.Mutex
	out io.Writer

	done     chan struct{}
	doneOnce sync.Once
}

// NewConsole returns a Console writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out, done: make(chan struct{})}
}

func (c *Console) UpdateProgress(percent float64) {
	c.printf("%s %5.1f%%\n", consoleLabel.Render("progress"), percent)
}

func (c *Console) UpdateMetrics(document string) {
	c.printf("%s %s\n", consoleLabel.Render("metrics"), consoleFaint.Render(document))
}

func (c *Console) ReportStarted(_, sessionID string) {
	c.printf("%s session %s\n", consoleLabel.Render("started"), sessionID)
}

func (c *Console) ReportCompleted(_, sessionID string) {
	c.printf("%s session %s\n", consoleSuccess.Render("completed"), sessionID)
	c.finish()
}

func (c *Console) ReportFailure(_, message string, _ error) {
	c.printf("%s\n", consoleFailure.Render(message))
	c.finish()
}

// Run implements [Frontend].
func (c *Console) Run(ctx context.Context) error {
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ErrInterrupted
	}
}

func (c *Console) finish() {
	c.doneOnce.Do(func() { close(c.done) })
}

func (c *Console) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintf(c.out, format, args...)
}
