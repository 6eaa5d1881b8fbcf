package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"crosswire.dev/pkg/crosswire/internal/domain"
	m "crosswire.dev/pkg/crosswire/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the last saved report",
		Long:  "View the report saved by `solve --save` in the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: reportsPath})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
