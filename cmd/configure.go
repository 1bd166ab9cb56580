package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joeflack4/ppp-training-fork/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage saved converter defaults",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Save a converter default",
	Long: `Save one converter default to the config file. Saved values sit at
the bottom of the precedence chain: flags and PMIX_* environment
variables override them per invocation.

Keys:
  delimiter    CSV field delimiter, a single character
  keep-space   "true" to keep whitespace in text cells, "false" to trim
  date-system  1900 or 1904, overriding the workbook's declaration

Examples:
  pmix config set delimiter ';'
  pmix config set date-system 1904`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved defaults as JSON",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset",
	Short: "Delete the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigUnset,
}

func init() {
	configSetCmd.SilenceUsage = true
	configShowCmd.SilenceUsage = true
	configUnsetCmd.SilenceUsage = true
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	switch key {
	case "delimiter":
		if len([]rune(value)) != 1 {
			return fmt.Errorf("delimiter must be a single character, got %q", value)
		}
		cfg.Delimiter = value
	case "keep-space":
		switch value {
		case "true":
			cfg.KeepWhitespace = true
		case "false":
			cfg.KeepWhitespace = false
		default:
			return fmt.Errorf("keep-space must be true or false, got %q", value)
		}
	case "date-system":
		if _, err := parseDateSystem(value); err != nil {
			return err
		}
		cfg.DateSystem = value
	default:
		return fmt.Errorf("unknown config key %q (want delimiter, keep-space, or date-system)", key)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "set %s\n", key)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	return jsonPrint(cmd.OutOrStdout(), cfg)
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	if err := config.Delete(); err != nil {
		return fmt.Errorf("deleting config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "config cleared")
	return nil
}
