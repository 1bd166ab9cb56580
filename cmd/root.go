package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/joeflack4/ppp-training-fork/config"
	"github.com/joeflack4/ppp-training-fork/spreadsheet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	keepSpace  bool
	delimiter  string
	dateSystem dateSystemFlag
)

var rootCmd = &cobra.Command{
	Use:           "pmix",
	Short:         "pmix — spreadsheet conversion and column tools",
	Version:       Version,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&keepSpace, "keep-space", false,
		"Keep leading/trailing whitespace in text cells (env: PMIX_KEEP_SPACE)")
	rootCmd.PersistentFlags().StringVar(&delimiter, "delimiter", "",
		`CSV field delimiter (default ","; env: PMIX_DELIMITER)`)
	rootCmd.PersistentFlags().Var(&dateSystem, "date-system",
		"Override the workbook date system: 1900 or 1904 (env: PMIX_DATE_SYSTEM)")
}

func Execute() error {
	_ = godotenv.Load() // a .env file is optional
	return rootCmd.Execute()
}

// dateSystemFlag accepts "1900" or "1904".
type dateSystemFlag struct {
	set  bool
	mode spreadsheet.DateMode
}

var _ pflag.Value = (*dateSystemFlag)(nil)

func (f *dateSystemFlag) String() string {
	if !f.set {
		return ""
	}
	if f.mode == spreadsheet.DateMode1904 {
		return "1904"
	}
	return "1900"
}

func (f *dateSystemFlag) Set(s string) error {
	mode, err := parseDateSystem(s)
	if err != nil {
		return err
	}
	f.set = true
	f.mode = mode
	return nil
}

func (f *dateSystemFlag) Type() string { return "year" }

func parseDateSystem(s string) (spreadsheet.DateMode, error) {
	switch s {
	case "1900":
		return spreadsheet.DateMode1900, nil
	case "1904":
		return spreadsheet.DateMode1904, nil
	}
	return 0, fmt.Errorf("date system must be 1900 or 1904, got %q", s)
}

// resolveStripText decides whether text cells are trimmed: flag, then
// env, then saved config; trimming is the default.
func resolveStripText() bool {
	if keepSpace {
		return false
	}
	if v := os.Getenv("PMIX_KEEP_SPACE"); v == "1" || v == "true" {
		return false
	}
	cfg, err := config.Load()
	if err != nil {
		return true
	}
	return !cfg.KeepWhitespace
}

// resolveDelimiter picks the CSV delimiter: flag, env, config, then ",".
func resolveDelimiter() (rune, error) {
	pick := delimiter
	if pick == "" {
		pick = os.Getenv("PMIX_DELIMITER")
	}
	if pick == "" {
		if cfg, err := config.Load(); err == nil {
			pick = cfg.Delimiter
		}
	}
	if pick == "" {
		return ',', nil
	}
	runes := []rune(pick)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", pick)
	}
	return runes[0], nil
}

// resolveDateSystem picks the date system: flag, env, config, then the
// workbook's own declaration.
func resolveDateSystem(declared spreadsheet.DateMode) (spreadsheet.DateMode, error) {
	if dateSystem.set {
		return dateSystem.mode, nil
	}
	if v := os.Getenv("PMIX_DATE_SYSTEM"); v != "" {
		return parseDateSystem(v)
	}
	if cfg, err := config.Load(); err == nil && cfg.DateSystem != "" {
		return parseDateSystem(cfg.DateSystem)
	}
	return declared, nil
}
