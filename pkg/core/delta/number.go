package delta

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// accounting cell alphabet, whitespace removed: $ ( ) digits , . -
	numericCellRe = regexp.MustCompile(`^[$()\d,.\-]+$`)
	looseStripRe  = regexp.MustCompile(`[^0-9.\-()]`)
	strictStripRe = regexp.MustCompile(`[^0-9.\-]`)
)

// NormalizeText folds compatibility characters (non-breaking and narrow
// spaces, full-width digits) to their plain forms and trims the result.
func NormalizeText(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}

// LooksNumeric reports whether s, ignoring whitespace, is made only of
// characters that appear in accounting-formatted amounts.
func LooksNumeric(s string) bool {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return compact != "" && numericCellRe.MatchString(compact)
}

// ParseNumber is the lenient parser. Any text holding a digit is reduced to
// digits, '.', '-' and parentheses before parsing, so "USD 1,200" parses
// as 1200.
func ParseNumber(text string) (float64, bool) {
	raw := NormalizeText(text)
	if !strings.ContainsAny(raw, "0123456789") {
		return 0, false
	}
	cleaned := looseStripRe.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0, false
	}
	cleaned = strings.NewReplacer("(", "", ")", "").Replace(cleaned)
	return finish(raw, cleaned)
}

// ParseStrictNumber is the parser used while annotating. Text outside the
// accounting alphabet (units, words, footnote markers) is rejected outright.
func ParseStrictNumber(text string) (float64, bool) {
	raw := NormalizeText(text)
	if !LooksNumeric(raw) {
		return 0, false
	}
	cleaned := strictStripRe.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0, false
	}
	return finish(raw, cleaned)
}

// finish parses cleaned and applies the parenthesis rule: "(" without an
// explicit minus sign makes the value negative.
func finish(raw, cleaned string) (float64, bool) {
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	if strings.Contains(raw, "(") && !strings.Contains(raw, "-") {
		n = -math.Abs(n)
	}
	return n, true
}
