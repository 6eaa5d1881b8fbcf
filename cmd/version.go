package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	"crosswire.dev/pkg/crosswire/internal/domain"
)

const unknownVersion = "(devel)"

// buildVersion returns the module version recorded in the binary, if any.
func buildVersion(info *debug.BuildInfo, ok bool) (version, goVersion string) {
	if !ok || info == nil {
		return unknownVersion, ""
	}

	version = info.Main.Version
	if version == "" {
		version = unknownVersion
	}

	return version, info.GoVersion
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the crosswire build version, the report format version and the Go toolchain used.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := buildVersion(debug.ReadBuildInfo())

			cmd.Println("crosswire\t", version)
			cmd.Println("report format\t", domain.ReportVersion)

			if goVersion != "" {
				cmd.Println("go version\t", goVersion)
			}
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
