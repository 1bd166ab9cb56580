package workbook

// isDateStyled reports whether a numeric cell's number format renders a
// date or time, which is the only way the file format distinguishes
// dates from plain numbers.
func (wb *Workbook) isDateStyled(sheet, ref string) (bool, error) {
	styleID, err := wb.f.GetCellStyle(sheet, ref)
	if err != nil {
		return false, err
	}
	style, err := wb.f.GetStyle(styleID)
	if err != nil || style == nil {
		return false, err
	}
	if isBuiltinDateFormat(style.NumFmt) {
		return true, nil
	}
	if style.CustomNumFmt != nil {
		return customFormatHasDate(*style.CustomNumFmt), nil
	}
	return false, nil
}

// Builtin number format IDs that render dates or times.
func isBuiltinDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	return false
}

// customFormatHasDate scans a custom number format for date/time tokens.
// Quoted literals, bracketed sections, and escaped characters do not
// count; a bracketed elapsed-time section like [h] still trips on the
// mm/ss that follows it.
func customFormatHasDate(code string) bool {
	inQuote := false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case c == '"':
			inQuote = true
		case c == '\\':
			i++
		case c == '[':
			for i < len(code) && code[i] != ']' {
				i++
			}
		case c == 'y' || c == 'm' || c == 'd' || c == 'h' || c == 's' ||
			c == 'Y' || c == 'M' || c == 'D' || c == 'H' || c == 'S':
			return true
		}
	}
	return false
}
