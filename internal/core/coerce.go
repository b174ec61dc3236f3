package core

// coerce.go converts raw spreadsheet cell text into typed field values.
//
// Every coercion is total: it always yields a definite value (or, for dates,
// an explicit "no value") and never returns an error. Malformed input maps to
// the type's neutral value so a single odd cell can never abort a row, let
// alone an import.

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Date layouts split by year format so 2-digit years can be pivoted.
var (
	twoDigitYearLayouts = []string{
		"1/2/06", "01/02/06", "1-2-06", "1.2.06", "01.02.06",
	}
	fourDigitYearLayouts = []string{
		"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006", "1.2.2006", "01.02.2006",
		"2006-01-02", "2006/01/02", "2006.01.02",
		"Jan 2, 2006", "2 Jan 2006",
		"20060102",
	}
)

// TwoDigitYearPivot defines how 2-digit years are interpreted. Parsed years
// more than this many years in the future are assumed to be in the previous
// century.
var TwoDigitYearPivot = 20

// maxDaySerial bounds day-serial date interpretation to year 9999.
const maxDaySerial = 2958465

// trueLiterals is the exact affirmative set for boolean coercion. Anything
// else, including empty text, coerces to false.
var trueLiterals = map[string]bool{
	"Y": true, "YES": true, "TRUE": true, "1": true,
}

// CleanCell trims whitespace and strips common spreadsheet artifacts:
// formula-text prefixes (="value") and stray surrounding quotes.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	return strings.Trim(s, `"'`)
}

// CoerceText stringifies a cell: trimmed text, absent becomes "".
func CoerceText(s string) string {
	return strings.TrimSpace(s)
}

// CoerceInt parses an integer. Decimal input is truncated toward zero.
// Unparseable or absent input yields 0.
func CoerceInt(s string) int64 {
	s = CleanCell(s)
	if s == "" {
		return 0
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}

// CoerceBool yields true for exactly Y, YES, TRUE, or 1 (any letter case)
// and false for everything else.
func CoerceBool(s string) bool {
	return trueLiterals[strings.ToUpper(CleanCell(s))]
}

// CoerceDate interprets a cell as a calendar date. It tries date-text
// layouts first, then a day-serial number in the spreadsheet epoch
// convention. When nothing applies it reports ok=false, never an error.
func CoerceDate(s string) (time.Time, bool) {
	s = CleanCell(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range fourDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	pivotYear := time.Now().Year() + TwoDigitYearPivot
	for _, layout := range twoDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Year() > pivotYear {
				t = t.AddDate(-100, 0, 0)
			}
			return t, true
		}
	}

	// Day-serial fallback: a bare number counting days from the xlsx epoch.
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial > 0 && serial <= maxDaySerial {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return t, true
			}
		}
	}

	return time.Time{}, false
}
