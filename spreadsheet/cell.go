// Package spreadsheet models a worksheet as an in-memory rectangular table
// of typed cells. Raw tagged cell records from a workbook reader are
// normalized into native values on construction; the package then provides
// column-oriented access, paired-column iteration, and CSV export.
package spreadsheet

import (
	"math"
	"strings"
)

// Cell holds one normalized value and an optional highlight marker. The
// zero Cell is blank. Highlight may be set after construction by
// formatting logic; the value itself does not change.
type Cell struct {
	Value     Value
	Highlight string
}

// NewCell returns a cell holding v.
func NewCell(v Value) Cell { return Cell{Value: v} }

// FromRaw normalizes one raw tagged cell record into a Cell. Booleans come
// in as 0/1 numerics; integral floats collapse to integers; date serials
// are decoded against mode into a date, time, or datetime value depending
// on which half of the calendar tuple is zero. Error-typed and
// unrecognized records fail with a MalformedCellError.
func FromRaw(raw RawCell, mode DateMode, stripText bool) (Cell, error) {
	v, err := rawValue(raw, mode, stripText)
	if err != nil {
		return Cell{}, err
	}
	return Cell{Value: v}, nil
}

func rawValue(raw RawCell, mode DateMode, stripText bool) (Value, error) {
	switch raw.Type {
	case RawBoolean:
		return Bool(raw.Number == 1), nil
	case RawEmpty:
		return None(), nil
	case RawText:
		s := raw.Text
		if stripText {
			s = strings.TrimSpace(s)
		}
		return Text(s), nil
	case RawNumber:
		// float64(MaxInt64) rounds up to 2^63, so the upper bound is strict.
		if trunc := math.Trunc(raw.Number); trunc == raw.Number &&
			trunc >= math.MinInt64 && trunc < math.MaxInt64 {
			return Int(int64(trunc)), nil
		}
		return Float(raw.Number), nil
	case RawDate:
		year, month, day, hour, min, sec, err := decodeSerial(raw.Number, mode)
		if err != nil {
			return Value{}, err
		}
		switch {
		case year == 0 && month == 0 && day == 0:
			return TimeOfDay(hour, min, sec), nil
		case hour == 0 && min == 0 && sec == 0:
			return Date(year, month, day), nil
		default:
			return DateTime(year, month, day, hour, min, sec), nil
		}
	case RawError:
		return Value{}, &MalformedCellError{Type: RawError, Value: raw.rawString()}
	default:
		return Value{}, &MalformedCellError{Type: raw.Type, Value: raw.rawString()}
	}
}

// IsBlank reports whether the cell holds no value: none or the empty
// string. 0 and false are not blank; use Value.IsZero for the loose test.
func (c Cell) IsBlank() bool {
	return c.Value.Kind() == KindNone || (c.Value.Kind() == KindText && c.Value.Text() == "")
}

// String returns the cell's canonical text form; blank cells render as "".
func (c Cell) String() string { return c.Value.String() }
