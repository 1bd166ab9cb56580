// Package workbook reads .xlsx files into the raw tagged cell records the
// spreadsheet package normalizes. It owns the mapping from the file
// format's cell types and number styles to raw type tags, and surfaces
// the workbook's date system.
package workbook

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/joeflack4/ppp-training-fork/spreadsheet"
)

// Workbook is an open .xlsx file.
type Workbook struct {
	f     *excelize.File
	mode  spreadsheet.DateMode
	namer *spreadsheet.Namer
}

// Open opens a workbook. Legacy OLE2 .xls content is rejected with
// guidance; an OOXML file with a wrong extension opens normally.
func Open(path string) (*Workbook, error) {
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}
	if format == formatOLE2 {
		return nil, fmt.Errorf("%s is a legacy OLE2 (.xls) workbook: save it as .xlsx and retry",
			filepath.Base(path))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}

	mode := spreadsheet.DefaultDateMode
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil && *props.Date1904 {
		mode = spreadsheet.DateMode1904
	}

	return &Workbook{f: f, mode: mode, namer: spreadsheet.NewNamer("")}, nil
}

// Close releases the underlying file.
func (wb *Workbook) Close() error { return wb.f.Close() }

// DateMode returns the date system the workbook declares.
func (wb *Workbook) DateMode() spreadsheet.DateMode { return wb.mode }

// SetDateMode overrides the declared date system for subsequent reads.
func (wb *Workbook) SetDateMode(mode spreadsheet.DateMode) { wb.mode = mode }

// SheetNames lists the sheets in workbook order.
func (wb *Workbook) SheetNames() []string { return wb.f.GetSheetList() }

// Sheet is one materialized raw sheet. It satisfies spreadsheet.RawSheet.
type Sheet struct {
	name string
	rows [][]spreadsheet.RawCell
}

func (s *Sheet) Name() string { return s.name }

func (s *Sheet) NumRows() int { return len(s.rows) }

func (s *Sheet) Row(i int) []spreadsheet.RawCell { return s.rows[i] }

// RawSheet extracts one sheet as tagged raw cell records. Rows are padded
// with empty records to the widest row so the resulting table is
// rectangular.
func (wb *Workbook) RawSheet(name string) (*Sheet, error) {
	rows, err := wb.f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", name, err)
	}

	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}

	out := make([][]spreadsheet.RawCell, len(rows))
	for i, r := range rows {
		raw := make([]spreadsheet.RawCell, width)
		for j, text := range r {
			rc, err := wb.rawCell(name, i+1, j+1, text)
			if err != nil {
				return nil, err
			}
			raw[j] = rc
		}
		out[i] = raw
	}

	sheetName := name
	if sheetName == "" {
		sheetName = wb.namer.Next()
	}
	return &Sheet{name: sheetName, rows: out}, nil
}

// Worksheet reads one sheet and normalizes it.
func (wb *Workbook) Worksheet(name string, stripText bool) (*spreadsheet.Worksheet, error) {
	rs, err := wb.RawSheet(name)
	if err != nil {
		return nil, err
	}
	return spreadsheet.FromRawSheet(rs, wb.mode, stripText)
}

// Worksheets reads and normalizes every sheet in workbook order. Raw
// extraction is sequential (it shares the open file); normalization is
// pure and fans out one goroutine per sheet.
func (wb *Workbook) Worksheets(stripText bool) ([]*spreadsheet.Worksheet, error) {
	names := wb.SheetNames()
	raws := make([]*Sheet, len(names))
	for i, name := range names {
		rs, err := wb.RawSheet(name)
		if err != nil {
			return nil, err
		}
		raws[i] = rs
	}

	out := make([]*spreadsheet.Worksheet, len(names))
	var g errgroup.Group
	for i, rs := range raws {
		g.Go(func() error {
			ws, err := spreadsheet.FromRawSheet(rs, wb.mode, stripText)
			if err != nil {
				return err
			}
			out[i] = ws
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// rawCell maps one cell to a tagged raw record. row and col are 1-based;
// text is the cell's raw stored value.
func (wb *Workbook) rawCell(sheet string, row, col int, text string) (spreadsheet.RawCell, error) {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return spreadsheet.RawCell{}, err
	}
	ctype, err := wb.f.GetCellType(sheet, ref)
	if err != nil {
		return spreadsheet.RawCell{}, fmt.Errorf("cell %s!%s: %w", sheet, ref, err)
	}

	switch ctype {
	case excelize.CellTypeBool:
		n, _ := strconv.ParseFloat(text, 64) // stored as "1" / "0"
		return spreadsheet.RawCell{Type: spreadsheet.RawBoolean, Number: n}, nil
	case excelize.CellTypeError:
		return spreadsheet.RawCell{Type: spreadsheet.RawError, Text: text}, nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return spreadsheet.RawCell{Type: spreadsheet.RawText, Text: text}, nil
	case excelize.CellTypeDate:
		// ISO8601-typed cells store a text timestamp, not a serial.
		serial, err := wb.isoToSerial(text)
		if err != nil {
			return spreadsheet.RawCell{}, fmt.Errorf("cell %s!%s: %w", sheet, ref, err)
		}
		return spreadsheet.RawCell{Type: spreadsheet.RawDate, Number: serial}, nil
	default:
		// Numbers, formula results, and untyped cells: classify by the
		// stored value, then by the number format for dates.
		if text == "" {
			return spreadsheet.RawCell{Type: spreadsheet.RawEmpty}, nil
		}
		n, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return spreadsheet.RawCell{Type: spreadsheet.RawText, Text: text}, nil
		}
		isDate, err := wb.isDateStyled(sheet, ref)
		if err != nil {
			return spreadsheet.RawCell{}, err
		}
		if isDate {
			return spreadsheet.RawCell{Type: spreadsheet.RawDate, Number: n}, nil
		}
		return spreadsheet.RawCell{Type: spreadsheet.RawNumber, Number: n}, nil
	}
}

var isoLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

// isoToSerial converts an ISO8601 timestamp to a date serial under the
// workbook's date system.
func (wb *Workbook) isoToSerial(text string) (float64, error) {
	var t time.Time
	var err error
	for _, layout := range isoLayouts {
		if t, err = time.Parse(layout, text); err == nil {
			break
		}
	}
	if err != nil {
		return 0, fmt.Errorf("unparseable date %q", text)
	}

	epoch := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	if wb.mode == spreadsheet.DateMode1904 {
		epoch = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return t.UTC().Sub(epoch).Hours() / 24, nil
}
