package spreadsheet

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"sync/atomic"
)

// Row is one worksheet row.
type Row []Cell

// RowOf builds a row of cells from values.
func RowOf(values ...Value) Row {
	row := make(Row, len(values))
	for i, v := range values {
		row[i] = Cell{Value: v}
	}
	return row
}

// Worksheet is an ordered, row-major table of cells. Row 0 conventionally
// holds the column headers. The table is supposed to stay rectangular;
// the invariant is checked lazily, on width queries, rather than on every
// mutation — mutating rows directly can corrupt the table undetected
// until the next NumCols or Dim call.
type Worksheet struct {
	name string
	rows []Row
}

// New returns an empty worksheet. Use a Namer to allocate a default name
// when the caller has none.
func New(name string) *Worksheet { return &Worksheet{name: name} }

// FromRows returns a worksheet over an existing row matrix. The matrix is
// not copied.
func FromRows(name string, rows []Row) *Worksheet {
	return &Worksheet{name: name, rows: rows}
}

// FromRawSheet builds a worksheet by normalizing every cell of a raw
// sheet in source order. stripText trims whitespace from text cells. A
// single malformed cell aborts the whole conversion; the returned error
// carries the sheet, row, and column of the offending cell so it can be
// fixed at the source.
func FromRawSheet(rs RawSheet, mode DateMode, stripText bool) (*Worksheet, error) {
	ws := New(rs.Name())
	for i := range rs.NumRows() {
		raw := rs.Row(i)
		row := make(Row, len(raw))
		for j, rc := range raw {
			cell, err := FromRaw(rc, mode, stripText)
			if err != nil {
				return nil, fmt.Errorf("sheet %q row %d col %d: %w", rs.Name(), i, j, err)
			}
			row[j] = cell
		}
		ws.rows = append(ws.rows, row)
	}
	return ws, nil
}

// Name returns the sheet name.
func (ws *Worksheet) Name() string { return ws.name }

// Len returns the number of rows.
func (ws *Worksheet) Len() int { return len(ws.rows) }

// Row returns the row at index i. The slice aliases the worksheet's
// storage, so cell highlights can be set through it.
func (ws *Worksheet) Row(i int) Row { return ws.rows[i] }

// Rows iterates the rows in order.
func (ws *Worksheet) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, row := range ws.rows {
			if !yield(row) {
				return
			}
		}
	}
}

// NumCols returns the column count, verifying that every row shares it.
// A ragged table fails with a TableIntegrityError; an empty table has
// zero columns.
func (ws *Worksheet) NumCols() (int, error) {
	if len(ws.rows) == 0 {
		return 0, nil
	}
	widths := []int{len(ws.rows[0])}
	for _, row := range ws.rows[1:] {
		if !slices.Contains(widths, len(row)) {
			widths = append(widths, len(row))
		}
	}
	if len(widths) > 1 {
		return 0, &TableIntegrityError{Widths: widths}
	}
	return widths[0], nil
}

// Dim returns the dimensions as (rows, columns).
func (ws *Worksheet) Dim() (nrow, ncol int, err error) {
	ncol, err = ws.NumCols()
	return len(ws.rows), ncol, err
}

// PrependRow inserts a row at index 0. A nil row inserts blanks matching
// the current width, or a single blank cell when the table is empty. A
// supplied row must match the table width exactly.
func (ws *Worksheet) PrependRow(row Row) error {
	if row == nil {
		if len(ws.rows) == 0 {
			ws.rows = append(ws.rows, Row{{}})
			return nil
		}
		row = make(Row, len(ws.rows[0]))
	} else {
		ncol, err := ws.NumCols()
		if err != nil {
			return err
		}
		if len(row) != ncol {
			return fmt.Errorf("%w: worksheet has %d columns, supplied row has %d",
				ErrRowWidthMismatch, ncol, len(row))
		}
	}
	ws.rows = append([]Row{row}, ws.rows...)
	return nil
}

// AppendCol extends every row by one cell. Row 0 receives header as its
// value; all other rows receive a blank cell.
func (ws *Worksheet) AppendCol(header Value) error {
	if _, err := ws.NumCols(); err != nil {
		return err
	}
	for i := range ws.rows {
		var c Cell
		if i == 0 {
			c = Cell{Value: header}
		}
		ws.rows[i] = append(ws.rows[i], c)
	}
	return nil
}

// ColumnHeaders returns the stringified cells of row 0, or nil for an
// empty table.
func (ws *Worksheet) ColumnHeaders() []string {
	if len(ws.rows) == 0 {
		return nil
	}
	headers := make([]string, len(ws.rows[0]))
	for i, c := range ws.rows[0] {
		headers[i] = c.String()
	}
	return headers
}

// Namer allocates sequential default sheet names (sheet1, sheet2, …).
// The counter only ever increments and is safe for concurrent use; own
// one per process, or per test, to keep naming deterministic.
type Namer struct {
	prefix string
	n      atomic.Int64
}

// NewNamer returns a namer with the given prefix; "" means "sheet".
func NewNamer(prefix string) *Namer {
	if prefix == "" {
		prefix = "sheet"
	}
	return &Namer{prefix: prefix}
}

// Next returns the next default name.
func (nm *Namer) Next() string {
	return nm.prefix + strconv.FormatInt(nm.n.Add(1), 10)
}
