package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formrules/pkg/sanitizer"
)

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)
	assert.Equal(t, "Ann Lee", clean("  Ann\x00\n\t Lee  "))
	assert.Equal(t, "x", sanitizer.Apply("x"))
}

func TestStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b", sanitizer.Trim("  a b \n"))
	assert.Equal(t, "hello", sanitizer.TrimToLower(" HeLLo "))
	assert.Equal(t, "one two three", sanitizer.SingleLine("one\r\ntwo   three"))
	assert.Equal(t, "ab\tc", sanitizer.RemoveControlChars("a\x07b\tc"))
	assert.Equal(t, "héll", sanitizer.MaxLength("héllo", 4))
	assert.Equal(t, "hi", sanitizer.MaxLength("hi", 10))
	assert.Empty(t, sanitizer.MaxLength("hi", 0))
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"  Ann.Lee@Example.COM ": "ann.lee@example.com",
		"ann..lee.@example.com":  "ann.lee@example.com",
		"not-an-email":           "not-an-email",
		"a@b@c":                  "a@b@c",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizer.NormalizeEmail(in), in)
	}
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+15551234567", sanitizer.NormalizePhone(" +1 (555) 123-45-67 "))
	assert.Equal(t, "5551234", sanitizer.NormalizePhone("555-1234"))
	assert.Empty(t, sanitizer.NormalizePhone("()"))
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "my_photo_.png", sanitizer.SanitizeFilename("my/photo?.png"))
	assert.Equal(t, "file", sanitizer.SanitizeFilename(" .. "))
	assert.Len(t, sanitizer.SanitizeFilename(strings.Repeat("a", 300)), 255)
}
