package commands

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YaCodeDev/GoYaQuickInput/config"
	"github.com/YaCodeDev/GoYaQuickInput/valueparser"
	"github.com/YaCodeDev/GoYaQuickInput/yainput"
	"github.com/YaCodeDev/GoYaQuickInput/yalogger"
)

// ReadCmd runs one typed read against the command's stdin and stderr.
func ReadCmd() *cobra.Command {
	var (
		prompt    string
		errMsg    string
		separator string
	)

	cmd := &cobra.Command{
		Use:   "read [type]",
		Short: "Prompt until the answer parses as the given type",
		Long: `Prompt on stderr until a line from stdin parses as the given type,
then print the value on stdout.

Run "yaquickinput types" for the list of type names.

Example:
  yaquickinput read bool --prompt "Continue? " --error "true or false"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind valueparser.Kind
			if err := kind.Unmarshal(args[0]); err != nil {
				return fmt.Errorf("unknown type %q, run %q for the list", args[0], "yaquickinput types")
			}

			cfg, cfgErr := config.LoadInputConfig(yalogger.NewDefaultLogger())
			if cfgErr != nil {
				return fmt.Errorf("loading config: %w", cfgErr)
			}

			if verbose, _ := cmd.Flags().GetBool(verboseFlag); verbose {
				cfg.LogLevel = yalogger.DebugLevel
			}

			if cmd.Flags().Changed("separator") {
				cfg.Separator = separator
			}

			reader := yainput.NewReader(cmd.InOrStdin(), cmd.ErrOrStderr(), yainput.ReaderOptions{
				Theme:     yainput.ThemeFor(cmd.ErrOrStderr(), cfg.Color),
				Separator: cfg.Separator,
			}, cfg.NewLogger())

			value, readErr := reader.ReadKind(kind, optional(cmd, "prompt", prompt), optional(cmd, "error", errMsg))
			if readErr != nil {
				return fmt.Errorf("reading %s: %w", kind, readErr)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), formatValue(kind, value))

			return err
		},
	}

	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "Text written before every attempt, without a newline")
	cmd.Flags().StringVarP(&errMsg, "error", "e", "", "Message written after an invalid answer instead of the default")
	cmd.Flags().StringVar(&separator, "separator", yainput.DefaultSeparator, "Line written after every error message")

	return cmd
}

// TypesCmd lists the type names accepted by read.
func TypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the type names accepted by read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := make([]string, 0, len(valueparser.Kinds()))
			for _, kind := range valueparser.Kinds() {
				names = append(names, kind.String())
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))

			return err
		},
	}
}

// optional distinguishes an empty flag value from an absent flag.
func optional(cmd *cobra.Command, flag, value string) *string {
	if !cmd.Flags().Changed(flag) {
		return nil
	}

	return yainput.Message(value)
}

func formatValue(kind valueparser.Kind, value any) string {
	switch v := value.(type) {
	case rune:
		if kind == valueparser.KindChar {
			return string(v)
		}
	case *big.Int:
		return v.String()
	case string:
		if kind == valueparser.KindRawString {
			return strings.TrimRight(v, "\r\n")
		}
	}

	return fmt.Sprint(value)
}
