package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joeflack4/ppp-training-fork/spreadsheet"
	"github.com/joeflack4/ppp-training-fork/workbook"
)

var (
	convertOut    string
	convertSheets []string
	convertRaw    bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <workbook.xlsx>",
	Short: "Convert workbook sheets to CSV",
	Long: `Convert sheets of an Excel workbook to CSV, one file per sheet.

Cell values are normalized before export: integral numbers become
integers, date cells become dates, times, or timestamps depending on
the stored value, and text is trimmed unless --keep-space is given.
An error-typed cell (#N/A, #DIV/0!, ...) aborts the conversion and
reports its position; fix it in the source file.

Output:
  default     <workbook>-<sheet>.csv next to the input
  --out DIR   the same names inside DIR
  --out FILE  exact path, allowed when a single sheet is selected
  --raw       write native values instead of display strings

Examples:
  pmix convert survey.xlsx
  pmix convert survey.xlsx -s choices -o choices.csv
  pmix convert survey.xlsx --delimiter ';' --date-system 1904`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "Output file (single sheet) or directory")
	convertCmd.Flags().StringSliceVarP(&convertSheets, "sheet", "s", nil, "Sheet to convert (repeatable; default all)")
	convertCmd.Flags().BoolVar(&convertRaw, "raw", false, "Write raw native values instead of display strings")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	path := args[0]

	comma, err := resolveDelimiter()
	if err != nil {
		return err
	}
	strip := resolveStripText()

	wb, err := workbook.Open(path)
	if err != nil {
		return err
	}
	defer wb.Close()

	mode, err := resolveDateSystem(wb.DateMode())
	if err != nil {
		return err
	}
	wb.SetDateMode(mode)

	sheets, err := selectWorksheets(wb, strip)
	if err != nil {
		return err
	}

	opts := spreadsheet.CSVOptions{Raw: convertRaw, Comma: comma}
	for _, ws := range sheets {
		dest, err := outputPath(path, ws.Name(), len(sheets))
		if err != nil {
			return err
		}
		if err := ws.ToCSV(dest, opts); err != nil {
			return fmt.Errorf("writing sheet %q: %w", ws.Name(), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d rows)\n", dest, ws.Len())
	}
	return nil
}

// selectWorksheets normalizes either the requested sheets or all of them.
func selectWorksheets(wb *workbook.Workbook, strip bool) ([]*spreadsheet.Worksheet, error) {
	if len(convertSheets) == 0 {
		return wb.Worksheets(strip)
	}
	out := make([]*spreadsheet.Worksheet, 0, len(convertSheets))
	for _, name := range convertSheets {
		ws, err := wb.Worksheet(name, strip)
		if err != nil {
			return nil, err
		}
		out = append(out, ws)
	}
	return out, nil
}

func outputPath(input, sheet string, nselected int) (string, error) {
	if convertOut != "" && strings.EqualFold(filepath.Ext(convertOut), ".csv") {
		if nselected > 1 {
			return "", fmt.Errorf("--out %s names a file but %d sheets are selected; use a directory", convertOut, nselected)
		}
		return convertOut, nil
	}
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	name := stem + "-" + sheet + ".csv"
	dir := filepath.Dir(input)
	if convertOut != "" {
		dir = convertOut
	}
	return filepath.Join(dir, name), nil
}
