package delta

import (
	"regexp"
	"strings"
)

var (
	monthRe    = regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\b`)
	yearRe     = regexp.MustCompile(`\b20\d{2}\b`)
	fourDigits = regexp.MustCompile(`^\d{4}$`)
	bareYearRe = regexp.MustCompile(`^(19|20)\d{2}$`)
)

// IsDateText reports whether s names a full month together with a 20xx year,
// e.g. "June 28, 2025".
func IsDateText(s string) bool {
	return monthRe.MatchString(s) && yearRe.MatchString(s)
}

// IsHeaderOrDateRow reports whether a row carries labels rather than
// comparable amounts. Such rows are never annotated.
func IsHeaderOrDateRow(row Row) bool {
	text := NormalizeText(row.Text())
	if text == "" {
		return true
	}
	if IsDateText(text) {
		return true
	}
	if isFiscalYearRow(row) {
		return true
	}
	return strings.Contains(strings.ToLower(text), "months ended")
}

// isFiscalYearRow matches rows such as "2025 | 2024": every non-empty cell is
// a four digit number and no cell carries a currency symbol.
func isFiscalYearRow(row Row) bool {
	seen := 0
	for _, c := range row.Cells {
		if strings.Contains(c.Text, "$") {
			return false
		}
		t := NormalizeText(c.Text)
		if t == "" {
			continue
		}
		if !fourDigits.MatchString(t) {
			return false
		}
		seen++
	}
	return seen > 0
}

// isComparable reports whether a cell can take part in a comparison pair.
// Dates and bare years are excluded even though they parse as numbers.
func isComparable(c Cell) bool {
	if c.Header {
		return false
	}
	t := NormalizeText(c.Text)
	if IsDateText(t) || bareYearRe.MatchString(t) {
		return false
	}
	_, ok := ParseStrictNumber(t)
	return ok
}
