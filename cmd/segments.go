package cmd

import (
	"github.com/spf13/cobra"
)

// segmentsCmd represents the segments command.
var segmentsCmd = newSegmentsCmd()

func newSegmentsCmd() *cobra.Command {
	opts := &inputOptions{}

	cmd := &cobra.Command{
		Use:   "segments [input]",
		Short: "List the segments of each wire",
		Long:  segmentsLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Segments(cmd.Context(), parseInput(args, opts))
		},
	}

	configureInputFlags(cmd, opts)

	return cmd
}

func init() {
	rootCmd.AddCommand(segmentsCmd)
}
