package profitloss

import (
	"strconv"
	"strings"
)

// =============================================================================
// VALUE PARSING - Locale tolerant numeric cells
// =============================================================================

// ParseNumber converts a report cell into a number. Unparseable text yields 0.
// Handles:
//
//	"1.234,56" → 1234.56 (decimal comma)
//	"1,234.56" → 1234.56 (decimal point)
//	"987,00" → 987
//	"120.000" → 120000 (single separator + three digits = thousands)
//	",75" → 0.75 (no leading zero)
//	"(1.234)" or "-1.234" or "1.234-" → -1234
//	"€ 2.500" → 2500
//	"-" or "—" → 0
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	firstDigit := strings.IndexFunc(s, isDigit)
	if firstDigit < 0 {
		return 0
	}
	lastDigit := strings.LastIndexFunc(s, isDigit)

	negative := strings.Contains(s, "(") && strings.Contains(s, ")")
	if strings.ContainsAny(s[:firstDigit], "-−") || strings.ContainsAny(s[lastDigit+1:], "-−") {
		negative = true
	}

	// Keep digits and separators only. A separator right before the first
	// digit is a decimal mark without its leading zero (",75").
	start := firstDigit
	var b strings.Builder
	if firstDigit > 0 && (s[firstDigit-1] == '.' || s[firstDigit-1] == ',') {
		start--
		b.WriteByte('0')
	}
	for _, r := range s[start : lastDigit+1] {
		if isDigit(r) || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}

	value, err := strconv.ParseFloat(normalizeSeparators(b.String()), 64)
	if err != nil {
		return 0
	}
	if negative {
		value = -value
	}
	return value
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// normalizeSeparators rewrites a digits-and-separators string into
// strconv.ParseFloat syntax.
func normalizeSeparators(s string) string {
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		// Both present: the right-most one is the decimal separator
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			return strings.Replace(s, ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		return resolveSingleSeparator(s, ",")
	case lastDot >= 0:
		return resolveSingleSeparator(s, ".")
	}
	return s
}

func resolveSingleSeparator(s, sep string) string {
	if strings.Count(s, sep) > 1 {
		return strings.ReplaceAll(s, sep, "")
	}
	idx := strings.Index(s, sep)
	if len(s)-idx-1 == 3 && s[:idx] != "0" {
		return strings.ReplaceAll(s, sep, "")
	}
	return strings.Replace(s, sep, ".", 1)
}
