package controller

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "crosswire.dev/pkg/crosswire/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayResult prints both answers.
func (s *SimpleUI) DisplayResult(ctx context.Context, result m.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderTable(resultHeader, resultRows(result), nil))

	return nil
}

// DisplaySegments prints one table per wire.
func (s *SimpleUI) DisplaySegments(ctx context.Context, wires []m.Wire) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, wire := range wires {
		s.printf("\nWire %s: %s -> %s\n", wire.Name, wire.Raw, wire.End)
		s.printf("%s", renderTable(segmentHeader, segmentRows(wire), []string{
			"", "", "", "", fmt.Sprintf("Total Segments %d", len(wire.Segments)), "", "", "",
		}))
	}

	return nil
}

// DisplayCandidates prints every raw intersection candidate.
func (s *SimpleUI) DisplayCandidates(ctx context.Context, candidates []m.PointWithCost) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderTable(candidateHeader, candidateRows(candidates), []string{
		"", fmt.Sprintf("Total Candidates %d", len(candidates)), "", "",
	}))

	return nil
}

// DisplayReport prints a saved report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Report generated %s\n", report.Generated.Format(time.RFC3339))

	for i, wire := range report.Wires {
		segments := 0
		if i < len(report.Segments) {
			segments = report.Segments[i]
		}

		s.printf("Wire %d (%d segments): %s\n", i+1, segments, wire)
	}

	s.printf("Candidates: %d\n", report.Candidates)

	return s.DisplayResult(ctx, report.Result)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderTable(header []string, rows [][]string, footer []string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)

	if footer != nil {
		table.SetFooter(footer)
	}

	table.Render()

	return tableBuffer.String()
}
