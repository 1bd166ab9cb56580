package spreadsheet

import (
	"strconv"
	"time"
)

// Kind identifies which native type a Value holds.
type Kind uint8

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindDate
	KindTime
	KindDateTime
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindDateTime:
		return "datetime"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is the closed set of native types a cell can hold. The zero Value
// is none. A Value never carries a raw tagged representation; normalization
// happens in FromRaw before a Value exists.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	t    time.Time
}

// None returns the blank value.
func None() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Text returns a text value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Date returns a date-only value.
func Date(year int, month time.Month, day int) Value {
	return Value{kind: KindDate, t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// TimeOfDay returns a time-only value.
func TimeOfDay(hour, min, sec int) Value {
	return Value{kind: KindTime, t: time.Date(1, time.January, 1, hour, min, sec, 0, time.UTC)}
}

// DateTime returns a combined date-and-time value.
func DateTime(year int, month time.Month, day, hour, min, sec int) Value {
	return Value{kind: KindDateTime, t: time.Date(year, month, day, hour, min, sec, 0, time.UTC)}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload; false for other kinds.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload; 0 for other kinds.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload; 0 for other kinds.
func (v Value) Float() float64 { return v.f }

// Text returns the text payload; "" for other kinds.
func (v Value) Text() string { return v.s }

// Time returns the calendar payload for date, time, and datetime values.
func (v Value) Time() time.Time { return v.t }

// IsZero reports whether the value is falsy by native rules: none, false,
// 0, 0.0, or the empty string. Calendar values are never zero.
func (v Value) IsZero() bool {
	switch v.kind {
	case KindNone:
		return true
	case KindBool:
		return !v.b
	case KindInt:
		return v.i == 0
	case KindFloat:
		return v.f == 0
	case KindText:
		return v.s == ""
	}
	return false
}

// String returns the canonical display form: "" for none, native
// formatting otherwise. This is the representation used for CSV export
// and header lookup.
func (v Value) String() string {
	switch v.kind {
	case KindNone:
		return ""
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return v.s
	case KindDate:
		return v.t.Format("2006-01-02")
	case KindTime:
		return v.t.Format("15:04:05")
	case KindDateTime:
		return v.t.Format("2006-01-02 15:04:05")
	}
	return ""
}

// Native returns the underlying Go value: nil, bool, int64, float64,
// string, or time.Time.
func (v Value) Native() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindText:
		return v.s
	case KindDate, KindTime, KindDateTime:
		return v.t
	}
	return nil
}
