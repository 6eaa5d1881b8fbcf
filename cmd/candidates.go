package cmd

import (
	"github.com/spf13/cobra"
)

// candidatesCmd represents the candidates command.
var candidatesCmd = newCandidatesCmd()

func newCandidatesCmd() *cobra.Command {
	opts := &inputOptions{}

	cmd := &cobra.Command{
		Use:   "candidates [input]",
		Short: "List every intersection candidate",
		Long:  candidatesLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Candidates(cmd.Context(), parseInput(args, opts))
		},
	}

	configureInputFlags(cmd, opts)

	return cmd
}

func init() {
	rootCmd.AddCommand(candidatesCmd)
}
