package features

import (
	"strings"
	"unicode/utf8"

	"github.com/urlsift/urlsift/models"
)

// Lengths are code-point counts, not byte counts, so multibyte
// characters in IDN or percent-decoded URLs count once.

// URLLength is the character count of the raw string. It is defined
// for every input, including the empty string.
func URLLength(rawURL string) int {
	return utf8.RuneCountInString(rawURL)
}

// HostnameLength is the character count of the parsed host, 0 when
// unparseable.
func HostnameLength(p models.ParseResult) int {
	return utf8.RuneCountInString(p.Host)
}

// PathLength is the character count of the parsed path, 0 when
// unparseable.
func PathLength(p models.ParseResult) int {
	return utf8.RuneCountInString(p.Path)
}

// FDLength is the length of the first directory segment of the path:
// the element at index 1 after splitting on "/". A path of exactly "/"
// has an empty first segment and yields 0, as does any URL without a
// parsed path.
func FDLength(p models.ParseResult) int {
	parts := strings.Split(p.Path, "/")
	if len(parts) < 2 {
		return 0
	}
	return utf8.RuneCountInString(parts[1])
}

// DirCount counts "/" characters in the parsed path, but only for URLs
// that carry both a scheme and a host. A scheme-less string like
// "example.com/a/b" is not a real URL for this feature and scores 0
// even though it contains slashes. This gating is part of the feature
// contract; the downstream model weights depend on it.
func DirCount(p models.ParseResult) int {
	if p.Scheme == "" || p.Host == "" {
		return 0
	}
	return strings.Count(p.Path, "/")
}
