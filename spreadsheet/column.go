package spreadsheet

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
)

type keyKind uint8

const (
	keyUnset keyKind = iota
	keyByName
	keyByIndex
)

// ColumnKey selects a column either by header name or by position. The
// zero ColumnKey is unset: Column rejects it, and ColumnPairs treats an
// unset base as "use the first selected column".
type ColumnKey struct {
	kind  keyKind
	name  string
	index int
}

// ByName selects the column whose row-0 header equals name.
func ByName(name string) ColumnKey { return ColumnKey{kind: keyByName, name: name} }

// ByIndex selects the column at position i.
func ByIndex(i int) ColumnKey { return ColumnKey{kind: keyByIndex, index: i} }

func (k ColumnKey) String() string {
	switch k.kind {
	case keyByName:
		return strconv.Quote(k.name)
	case keyByIndex:
		return strconv.Itoa(k.index)
	}
	return "<unset>"
}

// resolveKey maps a key to a column position, bounds-checked against the
// table's headers and width.
func resolveKey(key ColumnKey, headers []string, ncol int) (int, error) {
	switch key.kind {
	case keyByName:
		if i := slices.Index(headers, key.name); i >= 0 {
			return i, nil
		}
		return 0, fmt.Errorf("%w: no header %q", ErrColumnNotFound, key.name)
	case keyByIndex:
		if key.index < 0 || key.index >= ncol {
			return 0, fmt.Errorf("%w: %d (worksheet has %d columns)",
				ErrColumnOutOfRange, key.index, ncol)
		}
		return key.index, nil
	default:
		return 0, ErrBadColumnKey
	}
}

// Column returns a lazy, restartable iterator over one column's cells,
// first row to last. The *Cell values alias the worksheet's storage.
func (ws *Worksheet) Column(key ColumnKey) (iter.Seq[*Cell], error) {
	ncol, err := ws.NumCols()
	if err != nil {
		return nil, err
	}
	col, err := resolveKey(key, ws.ColumnHeaders(), ncol)
	if err != nil {
		return nil, err
	}
	return func(yield func(*Cell) bool) {
		for i := range ws.rows {
			if !yield(&ws.rows[i][col]) {
				return
			}
		}
	}, nil
}

// CellRef locates one cell for paired-column iteration.
type CellRef struct {
	Row    int
	Col    int
	Header string
	Cell   *Cell
}

// ColumnPairs returns a lazy iterator of (base, other) cell descriptors:
// one pair per (row, non-base selected column), rows in order from start,
// columns in the order given. indices selects and orders the columns,
// deduplicated; nil means all columns. An unset base takes the first
// selected column, and is otherwise removed from the selection. Consumers
// rely on the exact row-then-column ordering when building comparison
// reports.
func (ws *Worksheet) ColumnPairs(indices []ColumnKey, base ColumnKey, start int) (iter.Seq2[CellRef, CellRef], error) {
	ncol, err := ws.NumCols()
	if err != nil {
		return nil, err
	}
	headers := ws.ColumnHeaders()

	var cols []int
	if indices == nil {
		cols = make([]int, ncol)
		for i := range cols {
			cols[i] = i
		}
	} else {
		for _, key := range indices {
			col, err := resolveKey(key, headers, ncol)
			if err != nil {
				return nil, err
			}
			if !slices.Contains(cols, col) {
				cols = append(cols, col)
			}
		}
	}

	if len(cols) == 0 {
		return func(yield func(CellRef, CellRef) bool) {}, nil
	}

	var baseCol int
	if base.kind == keyUnset {
		baseCol = cols[0]
		cols = cols[1:]
	} else {
		baseCol, err = resolveKey(base, headers, ncol)
		if err != nil {
			return nil, err
		}
		if i := slices.Index(cols, baseCol); i >= 0 {
			cols = slices.Delete(cols, i, i+1)
		}
	}

	if len(cols) == 0 {
		return func(yield func(CellRef, CellRef) bool) {}, nil
	}

	return func(yield func(CellRef, CellRef) bool) {
		for i := max(start, 0); i < len(ws.rows); i++ {
			row := ws.rows[i]
			baseRef := CellRef{Row: i, Col: baseCol, Header: headers[baseCol], Cell: &row[baseCol]}
			for _, j := range cols {
				other := CellRef{Row: i, Col: j, Header: headers[j], Cell: &row[j]}
				if !yield(baseRef, other) {
					return
				}
			}
		}
	}, nil
}
