package spreadsheet

import "strconv"

// RawType tags a raw cell record with its source type. The numbering
// matches the cell type codes used by BIFF-era workbook readers.
type RawType uint8

const (
	RawEmpty RawType = iota
	RawText
	RawNumber
	RawDate
	RawBoolean
	RawError
)

func (t RawType) String() string {
	switch t {
	case RawEmpty:
		return "empty"
	case RawText:
		return "text"
	case RawNumber:
		return "number"
	case RawDate:
		return "date"
	case RawBoolean:
		return "boolean"
	case RawError:
		return "error"
	}
	return "type " + strconv.Itoa(int(t))
}

// RawCell is the tagged record a workbook reader produces before
// normalization. Text carries string-typed payloads; Number carries
// numeric payloads, booleans encoded as 0/1, and date serials.
type RawCell struct {
	Type   RawType
	Text   string
	Number float64
}

// rawString renders the payload for error messages.
func (rc RawCell) rawString() string {
	switch rc.Type {
	case RawText, RawError:
		return rc.Text
	case RawEmpty:
		return ""
	}
	return strconv.FormatFloat(rc.Number, 'g', -1, 64)
}

// RawSheet is the surface a workbook reader exposes for one sheet: a name,
// a row count, and row-indexed access to raw cell records.
type RawSheet interface {
	Name() string
	NumRows() int
	Row(i int) []RawCell
}

// DateMode selects the epoch and leap-year convention used to decode
// date serials.
type DateMode int

const (
	// DateMode1900 is the Windows convention: serial 1 is 1900-01-01,
	// and serial 60 is the nonexistent 1900-02-29 the format carries for
	// Lotus 1-2-3 compatibility.
	DateMode1900 DateMode = 0
	// DateMode1904 is the legacy Mac convention: serial 0 is 1904-01-01.
	DateMode1904 DateMode = 1
)

// DefaultDateMode applies when a workbook does not declare a date system.
const DefaultDateMode = DateMode1900
