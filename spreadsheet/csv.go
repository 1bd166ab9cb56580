package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSVOptions controls export formatting.
type CSVOptions struct {
	// Raw writes each value's native formatting instead of the canonical
	// display string. Blank cells are empty fields either way.
	Raw bool
	// Comma is the field delimiter; zero means ','.
	Comma rune
}

// WriteCSV writes the table row-major, one line per row.
func (ws *Worksheet) WriteCSV(w io.Writer, opts CSVOptions) error {
	cw := csv.NewWriter(w)
	if opts.Comma != 0 {
		cw.Comma = opts.Comma
	}
	var record []string
	for _, row := range ws.rows {
		record = record[:0]
		for _, cell := range row {
			if opts.Raw {
				record = append(record, rawField(cell.Value))
			} else {
				record = append(record, cell.String())
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToCSV writes the table to a file at path, creating or truncating it.
// The file is closed on every exit path.
func (ws *Worksheet) ToCSV(path string, opts CSVOptions) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return ws.WriteCSV(f, opts)
}

func rawField(v Value) string {
	native := v.Native()
	if native == nil {
		return ""
	}
	return fmt.Sprint(native)
}
