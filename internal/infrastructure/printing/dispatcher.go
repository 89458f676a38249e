package printing

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"scalehouse/internal/shared/config"
	"scalehouse/internal/shared/logger"
)

// Dispatcher sends a stored document to a physical printer. Printing is
// always best effort; a failed dispatch never invalidates the ticket.
type Dispatcher interface {
	Print(ctx context.Context, path string) error
	Enabled() bool
}

// CommandDispatcher shells out to the configured spooler command,
// normally lp.
type CommandDispatcher struct {
	enabled bool
	command string
	printer string
}

func NewCommandDispatcher(cfg *config.PrintingConfig) *CommandDispatcher {
	command := cfg.Command
	if command == "" {
		command = "lp"
	}
	return &CommandDispatcher{
		enabled: cfg.Enabled,
		command: command,
		printer: cfg.Printer,
	}
}

func (d *CommandDispatcher) Enabled() bool {
	return d.enabled
}

func (d *CommandDispatcher) Print(ctx context.Context, path string) error {
	if !d.enabled {
		return fmt.Errorf("printing is disabled")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	args := []string{}
	if d.printer != "" {
		args = append(args, "-d", d.printer)
	}
	args = append(args, path)

	cmd := exec.CommandContext(ctx, d.command, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("print command failed: %w (%s)", err, string(output))
	}

	logger.Info("document sent to printer", "path", path, "printer", d.printer)
	return nil
}

var _ Dispatcher = (*CommandDispatcher)(nil)
