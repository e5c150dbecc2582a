package commands

import (
	"github.com/spf13/cobra"
)

// Version is reported by --version.
const Version = "0.1.0"

const verboseFlag = "verbose"

// RootCmd creates and returns the root command for the yaquickinput CLI
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yaquickinput",
		Short: "Ask for a typed value on the terminal",
		Long: `yaquickinput prompts until the answer parses as the requested type
and prints the accepted value on stdout.

Prompts and error messages go to stderr, so the command composes with
shell substitution:

  port=$(yaquickinput read uint16 --prompt "Port: ")`,
		Version:      Version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolP(verboseFlag, "v", false, "Log every rejected attempt to stderr")

	return cmd
}
