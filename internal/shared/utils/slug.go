package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashes  = regexp.MustCompile(`-+`)
)

// GenerateSlug turns a post title into a URL segment.
//
//	"Hello, World!"      -> "hello-world"
//	"Nguyễn Nhật Ánh"    -> "nguyen-nhat-anh"
//
// The result only contains a-z, 0-9 and single inner hyphens, so
// GenerateSlug(GenerateSlug(s)) == GenerateSlug(s).
func GenerateSlug(input string) string {
	lower := strings.ToLower(RemoveDiacritics(input))
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := slugInvalid.ReplaceAllString(hyphenated, "")
	collapsed := slugDashes.ReplaceAllString(cleaned, "-")
	return strings.Trim(collapsed, "-")
}

// RemoveDiacritics strips combining marks ("é" -> "e"). The Vietnamese "đ"
// has no decomposition and is mapped by hand.
func RemoveDiacritics(input string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, input)
	if err != nil {
		out = input
	}
	return strings.NewReplacer("đ", "d", "Đ", "D").Replace(out)
}
