package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// CLIErrorAdapter prints command errors and exits with the category's code.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
	exit    func(int)
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		out:     os.Stderr,
		exit:    os.Exit,
	}
}

// ExitCodeFor returns 0 for nil, 1 for unclassified errors and the
// category's exit code otherwise.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if c, ok := AsClassified(err); ok {
		return c.category.ExitCode()
	}
	return 1
}

// FormatError renders err for the terminal. Verbose mode keeps the
// [category:severity] prefix.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	c, ok := AsClassified(err)
	switch {
	case !ok:
		return fmt.Sprintf("Error: %v", err)
	case a.verbose:
		return "Error: " + c.Error()
	case c.cause != nil:
		return fmt.Sprintf("Error: %s: %v", c.message, c.cause)
	default:
		return "Error: " + c.message
	}
}

// HandleError logs err when verbose, prints it and exits.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}
	if a.verbose {
		if c, ok := AsClassified(err); ok {
			c.log(context.Background(), a.logger)
		} else {
			a.logger.Error("Unclassified error", "error", err)
		}
	}
	_, _ = fmt.Fprintln(a.out, a.FormatError(err))
	a.exit(a.ExitCodeFor(err))
}
