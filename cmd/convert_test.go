package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
)

// writeSurveyFixture builds a small workbook with a header row and two
// data rows, including a pair of mismatched label columns for compare.
func writeSurveyFixture(t *testing.T, dir string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "survey"); err != nil {
		t.Fatalf("renaming sheet: %v", err)
	}
	rows := [][]any{
		{"name", "label", "label::fr"},
		{"q1", "Yes", "Oui"},
		{"q2", "No", "No"},
	}
	for r, row := range rows {
		for c, v := range row {
			ref, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("survey", ref, v); err != nil {
				t.Fatalf("setting %s: %v", ref, err)
			}
		}
	}

	path := filepath.Join(dir, "survey.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("saving fixture: %v", err)
	}
	return path
}

func resetConvertState(t *testing.T) {
	t.Helper()
	resetResolverState(t)
	origOut := convertOut
	origSheets := append([]string(nil), convertSheets...)
	origRaw := convertRaw
	t.Cleanup(func() {
		convertOut = origOut
		convertSheets = origSheets
		convertRaw = origRaw
	})
	convertOut = ""
	convertSheets = nil
	convertRaw = false
}

func TestRunConvert_SingleSheetToFile(t *testing.T) {
	resetConvertState(t)
	dir := t.TempDir()
	path := writeSurveyFixture(t, dir)

	convertSheets = []string{"survey"}
	convertOut = filepath.Join(dir, "out.csv")

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runConvert(cmd, []string{path}); err != nil {
		t.Fatalf("runConvert failed: %v", err)
	}

	data, err := os.ReadFile(convertOut)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := "name,label,label::fr\nq1,Yes,Oui\nq2,No,No\n"
	if string(data) != want {
		t.Fatalf("output mismatch:\ngot  %q\nwant %q", data, want)
	}
	if !strings.Contains(buf.String(), "wrote "+convertOut) {
		t.Fatalf("expected progress line naming %s, got %q", convertOut, buf.String())
	}
}

func TestRunConvert_DefaultNaming(t *testing.T) {
	resetConvertState(t)
	dir := t.TempDir()
	path := writeSurveyFixture(t, dir)

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	if err := runConvert(cmd, []string{path}); err != nil {
		t.Fatalf("runConvert failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "survey-survey.csv")); err != nil {
		t.Fatalf("expected survey-survey.csv next to the input: %v", err)
	}
}

func TestRunConvert_CustomDelimiter(t *testing.T) {
	resetConvertState(t)
	dir := t.TempDir()
	path := writeSurveyFixture(t, dir)

	delimiter = ";"
	convertSheets = []string{"survey"}
	convertOut = filepath.Join(dir, "out.csv")

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	if err := runConvert(cmd, []string{path}); err != nil {
		t.Fatalf("runConvert failed: %v", err)
	}

	data, err := os.ReadFile(convertOut)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(data), "name;label;label::fr\n") {
		t.Fatalf("expected semicolon-delimited header, got %q", data)
	}
}

func TestRunConvert_UnknownSheet(t *testing.T) {
	resetConvertState(t)
	dir := t.TempDir()
	path := writeSurveyFixture(t, dir)

	convertSheets = []string{"missing"}

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	if err := runConvert(cmd, []string{path}); err == nil {
		t.Fatal("expected error for unknown sheet")
	}
}

func TestOutputPath(t *testing.T) {
	resetConvertState(t)

	got, err := outputPath(filepath.Join("data", "survey.xlsx"), "choices", 2)
	if err != nil {
		t.Fatalf("outputPath returned error: %v", err)
	}
	if want := filepath.Join("data", "survey-choices.csv"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	convertOut = "exact.csv"
	if _, err := outputPath("survey.xlsx", "choices", 2); err == nil {
		t.Fatal("expected error when --out names a file but several sheets are selected")
	}
	got, err = outputPath("survey.xlsx", "choices", 1)
	if err != nil {
		t.Fatalf("outputPath returned error: %v", err)
	}
	if got != "exact.csv" {
		t.Fatalf("expected exact.csv, got %q", got)
	}

	convertOut = "outdir"
	got, err = outputPath("survey.xlsx", "choices", 2)
	if err != nil {
		t.Fatalf("outputPath returned error: %v", err)
	}
	if want := filepath.Join("outdir", "survey-choices.csv"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
