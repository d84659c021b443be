package workout

import (
	"strconv"
	"strings"
)

// ParseLoad reads the leading number of a load field such as "10kg" or
// "12,5 kg". Anything unparseable counts as 0; the raw text is never
// rejected.
func ParseLoad(s string) float64 {
	num := leadingNumber(s, true)
	if num == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(num, ",", "."), 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseReps reads the leading integer of a reps field, so "8-12" yields 8.
func ParseReps(s string) int {
	num := leadingNumber(s, false)
	if num == "" {
		return 0
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0
	}
	return n
}

// leadingNumber returns the numeric prefix of s after leading spaces, with an
// optional sign. With decimal set, one '.' or ',' separator is accepted.
func leadingNumber(s string, decimal bool) string {
	s = strings.TrimLeft(s, " \t\n")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := 0
	sep := false
	for end < len(s) {
		c := s[end]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case decimal && !sep && (c == '.' || c == ','):
			sep = true
		default:
			return trimNumber(s[:end], digits)
		}
		end++
	}
	return trimNumber(s[:end], digits)
}

func trimNumber(num string, digits int) string {
	if digits == 0 {
		return ""
	}
	return strings.TrimRight(num, ".,")
}
