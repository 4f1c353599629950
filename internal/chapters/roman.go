package chapters

import (
	"strconv"
	"strings"
)

// romanValues maps Roman numeral characters to their values.
var romanValues = map[rune]int{
	'I': 1, 'V': 5, 'X': 10, 'L': 50, 'C': 100, 'D': 500, 'M': 1000,
}

// RomanToInt converts a Roman numeral to an integer using the classic
// subtractive algorithm: scanning right to left, a value smaller than the one
// to its right is subtracted, otherwise added. Case-insensitive. Characters
// that are not Roman numerals contribute zero, so a fully unrecognized token
// yields 0.
func RomanToInt(s string) int {
	total := 0
	prev := 0
	for _, ch := range reverse(strings.ToUpper(s)) {
		v := romanValues[ch]
		if v < prev {
			total -= v
		} else {
			total += v
			prev = v
		}
	}
	if total < 0 {
		return 0
	}
	return total
}

// ParseNumber parses a chapter number token: pure digit strings parse as
// decimal, anything else is treated as a Roman numeral. Returns 0 for tokens
// that parse as neither; callers fall back to positional numbering.
func ParseNumber(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if isDigits(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return n
	}
	return RomanToInt(s)
}

func isDigits(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
