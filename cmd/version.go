package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const binaryName = "ts-module-alias-transformer"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the " + binaryName + " version",
		Long:  "Prints the " + binaryName + " build version and the Go toolchain it was built with.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Printf("%s version: unknown\n", binaryName)
				return
			}

			cmd.Printf("%s %s (built with %s)\n", binaryName, info.Main.Version, info.GoVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
