package features

import "github.com/urlsift/urlsift/models"

// Extract computes the full feature vector for one raw URL. The input
// can be any string: empty, scheme-less, malformed percent-encoding.
// Extract never fails; fields that depend on a parse fall back to their
// zero/default encoding when the URL has no usable host.
//
// Extract is deterministic: the same input always yields an identical
// record.
func Extract(rawURL string) models.FeatureRecord {
	parsed := Parse(rawURL)

	return models.FeatureRecord{
		URLLength:      URLLength(rawURL),
		HostnameLength: HostnameLength(parsed),
		PathLength:     PathLength(parsed),
		FDLength:       FDLength(parsed),

		CountDash:     TokenCount(rawURL, "-"),
		CountAt:       TokenCount(rawURL, "@"),
		CountQuestion: TokenCount(rawURL, "?"),
		CountPercent:  TokenCount(rawURL, "%"),
		CountDot:      TokenCount(rawURL, "."),
		CountEqual:    TokenCount(rawURL, "="),
		CountHTTP:     TokenCount(rawURL, "http"),
		CountHTTPS:    TokenCount(rawURL, "https"),
		CountWWW:      TokenCount(rawURL, "www"),

		CountDigits:  DigitCount(rawURL),
		CountLetters: LetterCount(rawURL),
		CountDir:     DirCount(parsed),

		UseOfIP:  HavingIPAddress(rawURL),
		ShortURL: IsShortened(rawURL),
	}
}
