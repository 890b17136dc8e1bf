// Package features computes the lexical feature vector for a single URL.
// Every function here is pure and total: no I/O, no shared state, and no
// error returns. A malformed input degrades to zero/default features
// instead of failing the row.
package features

import (
	"net/url"

	"github.com/urlsift/urlsift/models"
)

// Parse decomposes a raw URL string, best effort. It is the single
// parsing authority: every length, directory and host feature derives
// from its result, never from a second parse of the same string.
//
// Parse never fails. Any net/url error, and any URL without a host
// component (empty string, "not a url", "/just/a/path"), collapses to
// the unparseable result.
func Parse(rawURL string) models.ParseResult {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return models.Unparseable()
	}
	return models.ParseResult{
		Scheme: u.Scheme,
		Host:   u.Host,
		Path:   u.Path,
		Query:  u.RawQuery,
		OK:     true,
	}
}
