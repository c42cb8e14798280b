package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the timezone-toolkit application
var rootCmd = &cobra.Command{
	Use:   "timezone-toolkit",
	Short: "Timezone, scheduling and astronomy tools for AI assistants",
	Long: `timezone-toolkit provides timezone conversion, flexible time parsing,
cross-timezone meeting scheduling, business-day arithmetic, holiday lookups
and sunrise/sunset/moon-phase calculations.

It can run as:
  - An MCP (Model Context Protocol) server for AI assistants (default)
  - A REST API server exposing the same operations over JSON HTTP`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "timezone-toolkit version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRestCmd())
	rootCmd.AddCommand(newVersionCmd())
}
