package predicate

import (
	"cmp"
	"math"
	"strconv"
	"strings"
	"time"
)

// Exists reports whether v differs from its zero value.
func Exists[T comparable](v T) bool {
	var zero T
	return v != zero
}

// InRange reports whether min <= value <= max.
func InRange[T cmp.Ordered](value, min, max T) bool {
	return value >= min && value <= max
}

// OneOf reports whether value equals one of options.
func OneOf[T comparable](value T, options ...T) bool {
	for _, opt := range options {
		if value == opt {
			return true
		}
	}
	return false
}

// ParseNumber parses a number-like string. Surrounding whitespace is ignored
// and a blank string reads as zero. Infinities and NaN are rejected.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// IsNumberLike reports whether s parses as a finite number.
func IsNumberLike(s string) bool {
	_, ok := ParseNumber(s)
	return ok
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// ParseDate parses a date string in one of the supported layouts:
// RFC 3339, ISO date-time without zone, YYYY-MM-DD, or YYYY/MM/DD.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// YearsOf returns the difference in calendar years between t and now.
// Only the year component is compared.
func YearsOf(t, now time.Time) int {
	return now.Year() - t.Year()
}
