// Package cmd provides the root command and CLI setup for crosswire.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"crosswire.dev/pkg/crosswire/internal/adapter"
	"crosswire.dev/pkg/crosswire/internal/controller"
	"crosswire.dev/pkg/crosswire/internal/domain"
)

var inputAdapter adapter.InputAdapter
var reportStore adapter.ReportStore
var solver domain.Solver
var ui controller.UI
var workflow domain.Workflow

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

var verboseFlag bool
var logFileFlag string
var plainFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	inputAdapter = adapter.NewLocalInputAdapter()
	reportStore = adapter.NewReportStore()
	solver = domain.NewSolver()
	workflow = domain.NewWorkflow(inputAdapter, reportStore, ui, solver)
}

const inputHelp = `Each wire is a comma-separated list of steps such as R75,D30,U83,L12.
Wires are read from the first two non-blank lines of the input file
(default: input.txt) or given literally with --wire twice.`

const rootLongDescription = `Crosswire traces two wires laid out on a grid from a shared origin and
finds where they cross: the crossing closest to the origin by Manhattan
distance, and the crossing both wires reach with the fewest combined steps.

` + inputHelp

const solveLongDescription = `Solve both tasks for the given input file.

` + inputHelp

const segmentsLongDescription = `List the normalized segments of each wire.

` + inputHelp

const candidatesLongDescription = `List every raw intersection candidate with its distance and cost.

` + inputHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "crosswire",
		Short:        "Find where two grid wires cross",
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if configLoadErr != nil {
				slog.Warn("Ignoring unreadable config file", "file", configFileName, "error", configLoadErr)
			}

			if viper.GetBool(plainConfigKey) {
				ui = controller.NewSimpleUI(cmd)
				workflow = domain.NewWorkflow(inputAdapter, reportStore, ui, solver)
			}

			return nil
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for saved reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVar(&plainFlag, plainFlagName, viper.GetBool(plainConfigKey), "print plain tables even on a terminal")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(plainFlagName), plainConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
