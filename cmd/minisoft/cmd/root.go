package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "minisoft",
	Short: "MiniSoft compiler front-end",
	Long: `minisoft is a Go implementation of the MiniSoft compiler front-end.

It tokenizes, parses, and semantically analyzes MiniSoft source, and
lowers valid programs to a labelled three-address quadruple form. Each
pipeline stage is exposed as its own subcommand so it can be inspected
in isolation.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to a toolchain config YAML file")
	rootCmd.PersistentFlags().Bool("json", false, "print the stage result as JSON instead of formatted text")
	rootCmd.PersistentFlags().Bool("color", false, "colorize diagnostics for terminal output")
}
