package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Adel2411/minisoft-editor/internal/config"
	"github.com/spf13/cobra"
)

// readInput resolves a subcommand's source argument: a file path if
// given, stdin otherwise.
func readInput(args []string) (source, label string, err error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), "<stdin>", nil
}

// loadConfigFrom loads the toolchain config named by the --config flag,
// falling back to defaults when the flag is empty.
func loadConfigFrom(cmd *cobra.Command) (config.CompilerConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func wantsJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func isVerbose(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("verbose")
	return v
}

func wantsColor(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("color")
	return v
}
