package features

import "strings"

// CountTokens is the fixed set of substrings counted over the raw URL,
// in output column order. Each token is matched as literal text even
// though ".", "?" and "%" are regex metacharacters elsewhere.
var CountTokens = []string{"-", "@", "?", "%", ".", "=", "http", "https", "www"}

// TokenCount counts non-overlapping, case-sensitive literal occurrences
// of token in the raw URL. Note "http" matches inside "https", so the
// two counters move together on an https URL; they are independent
// literal counts, not exclusive ones.
func TokenCount(rawURL, token string) int {
	return strings.Count(rawURL, token)
}

// DigitCount counts characters in 0-9.
func DigitCount(rawURL string) int {
	n := 0
	for _, r := range rawURL {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// LetterCount counts ASCII letters a-z and A-Z. Non-ASCII letters are
// deliberately not counted; the trained model only ever saw ASCII counts.
func LetterCount(rawURL string) int {
	n := 0
	for _, r := range rawURL {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			n++
		}
	}
	return n
}
