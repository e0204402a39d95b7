package predicate

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NotBlank reports whether s contains anything besides whitespace.
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Contains reports whether pattern matches anywhere in value.
// A nil pattern never matches.
func Contains(value string, pattern *regexp.Regexp) bool {
	if pattern == nil {
		return false
	}
	return pattern.MatchString(value)
}

// Len returns the number of characters in s after NFC normalization.
func Len(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

// MinLen reports whether s has at least min characters.
func MinLen(s string, min int) bool {
	return Len(s) >= min
}

// MaxLen reports whether s has at most max characters.
func MaxLen(s string, max int) bool {
	return Len(s) <= max
}

// MaxBytes reports whether s is at most max bytes long.
func MaxBytes(s string, max int) bool {
	return len(s) <= max
}

// Character classes are ASCII only: "Ä" is not an uppercase letter and
// "٣" is not a digit here.
func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

// HasUpper reports whether s contains an ASCII uppercase letter.
func HasUpper(s string) bool {
	return strings.IndexFunc(s, isASCIIUpper) >= 0
}

// HasLower reports whether s contains an ASCII lowercase letter.
func HasLower(s string) bool {
	return strings.IndexFunc(s, isASCIILower) >= 0
}

// HasDigit reports whether s contains an ASCII digit.
func HasDigit(s string) bool {
	return strings.IndexFunc(s, isASCIIDigit) >= 0
}

// OnlyChars reports whether every rune of s is an ASCII digit, whitespace,
// or one of the runes in extra.
func OnlyChars(s, extra string) bool {
	for _, r := range s {
		if isASCIIDigit(r) || unicode.IsSpace(r) || strings.ContainsRune(extra, r) {
			continue
		}
		return false
	}
	return true
}

// OneOfFold reports whether value equals one of options under Unicode case folding.
func OneOfFold(value string, options ...string) bool {
	folder := cases.Fold()
	v := folder.String(value)
	for _, opt := range options {
		if folder.String(opt) == v {
			return true
		}
	}
	return false
}
