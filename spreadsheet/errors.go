package spreadsheet

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnNotFound reports a header name with no matching column.
	ErrColumnNotFound = errors.New("column not found")
	// ErrColumnOutOfRange reports a column index outside the table width.
	ErrColumnOutOfRange = errors.New("column index out of range")
	// ErrBadColumnKey reports a column key that is neither a name nor an index.
	ErrBadColumnKey = errors.New("column key must be a name or an index")
	// ErrRowWidthMismatch reports a row insert whose width differs from the table's.
	ErrRowWidthMismatch = errors.New("row width mismatch")
	// ErrBadDateMode reports a date system other than 1900 or 1904.
	ErrBadDateMode = errors.New("unknown date system")
	// ErrBadDateSerial reports a date serial outside the representable range.
	ErrBadDateSerial = errors.New("date serial out of range")
)

// MalformedCellError reports a raw cell that cannot be normalized: an
// error-typed cell, or a tag outside the recognized set. The source file
// must be corrected; conversion never proceeds past one.
type MalformedCellError struct {
	Type  RawType
	Value string
}

func (e *MalformedCellError) Error() string {
	if e.Type == RawError {
		return fmt.Sprintf("error cell %s: correct or erase it in the source file "+
			"(error cells are one of #N/A, #NULL!, #DIV/0!, #VALUE!, #REF!, #NAME?, #NUM!, #GETTING_DATA)",
			e.Value)
	}
	return fmt.Sprintf("unhandled cell type %s (value %q)", e.Type, e.Value)
}

// TableIntegrityError reports a worksheet whose rows differ in length.
// Rectangularity is checked lazily, so this surfaces on the first width
// query after the table was corrupted, not at the point of mutation.
type TableIntegrityError struct {
	// Widths holds the distinct row lengths observed, in first-seen order.
	Widths []int
}

func (e *TableIntegrityError) Error() string {
	return fmt.Sprintf("worksheet has inconsistent column counts %v", e.Widths)
}
