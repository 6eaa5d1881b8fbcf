// Package controller provides the output side of crosswire: plain tables for pipes
// and a styled, scrollable view for terminals.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "crosswire.dev/pkg/crosswire/internal/model"
)

// UI displays what the workflow computed.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayResult(ctx context.Context, result m.Result) error
	DisplaySegments(ctx context.Context, wires []m.Wire) error
	DisplayCandidates(ctx context.Context, candidates []m.PointWithCost) error
	DisplayReport(ctx context.Context, report m.Report) error
}

// NewUI returns a TUI when writing to a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
