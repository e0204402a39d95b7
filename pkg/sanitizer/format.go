package sanitizer

import (
	"regexp"
	"strings"
)

var (
	dotsRegex           = regexp.MustCompile(`\.{2,}`)
	unsafeFilenameRegex = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
)

// NormalizeEmail trims and lowercases email and collapses repeated dots in
// the local part. Values without exactly one "@" are only trimmed and
// lowercased.
func NormalizeEmail(email string) string {
	email = TrimToLower(email)

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = strings.Trim(dotsRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}

// NormalizePhone keeps a leading "+" and the digits of phone.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	var b strings.Builder
	if strings.HasPrefix(phone, "+") {
		b.WriteByte('+')
	}
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeFilename replaces characters that are unsafe in file names, trims
// dots and spaces at the ends and caps the length at 255 bytes. Empty results
// become "file".
func SanitizeFilename(filename string) string {
	safe := unsafeFilenameRegex.ReplaceAllString(filename, "_")
	safe = strings.Trim(safe, " .")
	if len(safe) > 255 {
		safe = safe[:255]
	}
	if safe == "" {
		return "file"
	}
	return safe
}
