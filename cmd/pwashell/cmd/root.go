// Package cmd contains the CLI commands for pwashell.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version info (set from main)
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"

	// Global flags
	cfgFile     string
	verbose     bool
	manifestRef string
)

// rootCmd represents the base command. Without a subcommand it opens the app
// window, so the binary can be launched directly from a desktop.
var rootCmd = &cobra.Command{
	Use:   "pwashell",
	Short: "Run a Progressive Web App as a desktop application",
	Long: `pwashell reads a web app manifest and opens its start URL in a native
webview window titled and styled after the manifest.

Links the page opens in a new window stay in the app when they fall inside
the manifest scope and go to your default browser otherwise.`,
	SilenceUsage: true,
	RunE:         runWindow,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets version information from the main package.
func SetVersionInfo(v, bt, gc string) {
	version = v
	buildTime = bt
	gitCommit = gc
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./pwashell.yaml or ~/.pwashell/pwashell.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&manifestRef, "manifest", "m", "", "manifest file path or http(s) URL (default: bundled manifest)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(qrCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd displays version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pwashell %s\n", version)
		fmt.Printf("  Build time: %s\n", buildTime)
		fmt.Printf("  Git commit: %s\n", gitCommit)
	},
}
