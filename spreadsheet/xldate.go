package spreadsheet

import (
	"fmt"
	"math"
	"time"
)

// Upper bound (exclusive) on the day part of a serial, per date mode.
// Both correspond to 9999-12-31.
var xlDaysTooLarge = [2]int{2958466, 2957004}

var (
	epoch1900 = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)
	// Serials of 61 and up shift one day to absorb the fake 1900-02-29.
	epoch1900Minus1 = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
	epoch1904       = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// decodeSerial converts a numeric date serial into a calendar tuple under
// the given date mode. A serial with a zero day part decodes to an
// all-zero date with only the time fields set; callers use that to tell
// time-of-day values apart from dates.
func decodeSerial(serial float64, mode DateMode) (year int, month time.Month, day, hour, min, sec int, err error) {
	if mode != DateMode1900 && mode != DateMode1904 {
		return 0, 0, 0, 0, 0, 0, fmt.Errorf("%w: %d", ErrBadDateMode, mode)
	}
	if serial < 0 {
		return 0, 0, 0, 0, 0, 0, fmt.Errorf("%w: %v is negative", ErrBadDateSerial, serial)
	}
	// Bound the float before truncating: a huge serial would overflow the
	// int conversion and slip past the day check below.
	if serial >= float64(xlDaysTooLarge[mode]) {
		return 0, 0, 0, 0, 0, 0, fmt.Errorf("%w: %v is past 9999-12-31", ErrBadDateSerial, serial)
	}

	days := int(serial)
	secs := int(math.Round((serial - float64(days)) * 86400))
	if secs == 86400 {
		secs = 0
		days++
	}
	if days >= xlDaysTooLarge[mode] {
		return 0, 0, 0, 0, 0, 0, fmt.Errorf("%w: %v is past 9999-12-31", ErrBadDateSerial, serial)
	}

	hour = secs / 3600
	min = secs / 60 % 60
	sec = secs % 60
	if days == 0 {
		return 0, 0, 0, hour, min, sec, nil
	}

	var epoch time.Time
	switch {
	case mode == DateMode1904:
		epoch = epoch1904
	case days < 61:
		epoch = epoch1900
	default:
		epoch = epoch1900Minus1
	}
	year, month, day = epoch.AddDate(0, 0, days).Date()
	return year, month, day, hour, min, sec, nil
}
