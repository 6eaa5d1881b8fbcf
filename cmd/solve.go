package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"crosswire.dev/pkg/crosswire/internal/domain"
	m "crosswire.dev/pkg/crosswire/internal/model"
)

// solveCmd represents the solve command.
var solveCmd = newSolveCmd()

func newSolveCmd() *cobra.Command {
	opts := &inputOptions{}

	var save bool

	cmd := &cobra.Command{
		Use:   "solve [input]",
		Short: "Find the closest and the cheapest crossing",
		Long:  solveLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Solve(cmd.Context(), domain.SolveArgs{
				InputArgs: parseInput(args, opts),
				Save:      save,
				Reports:   m.Path(viper.GetString(outputFlagName)),
			})
		},
	}

	configureInputFlags(cmd, opts)
	cmd.Flags().BoolVar(&save, saveFlagName, false, "save the result as a report in the output directory")

	return cmd
}

func init() {
	rootCmd.AddCommand(solveCmd)
}
