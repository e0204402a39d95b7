// Package sanitizer normalizes user input for storage.
//
// Sanitizers are plain func(string) string values, so they compose:
//
//	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)
//	name := clean(form.Name)
//
// Sanitizers never reject input. Run validation first and sanitize the
// values you keep.
package sanitizer
