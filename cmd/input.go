package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"crosswire.dev/pkg/crosswire/internal/domain"
	m "crosswire.dev/pkg/crosswire/internal/model"
)

// inputOptions holds the per-command flags that select the two wires.
type inputOptions struct {
	wires []string
	demo  bool
}

func configureInputFlags(cmd *cobra.Command, opts *inputOptions) {
	cmd.Flags().StringArrayVarP(&opts.wires, wireFlagName, "w", nil, "wire given literally (repeat twice)")
	cmd.Flags().BoolVar(&opts.demo, demoFlagName, false, "solve the built-in sample wires")
}

// parseInput resolves the wires for a command: --demo, then --wire, then the wires
// config key, then the input file (positional argument or input.path).
func parseInput(args []string, opts *inputOptions) domain.InputArgs {
	if opts.demo {
		return domain.InputArgs{Wires: demoWires}
	}

	wires := opts.wires
	if len(wires) == 0 {
		wires = viper.GetStringSlice(wiresConfigKey)
	}

	path := m.Path(viper.GetString(inputPathKey))
	if len(args) > 0 {
		path = m.Path(args[0])
	}

	return domain.InputArgs{Path: path, Wires: wires}
}
