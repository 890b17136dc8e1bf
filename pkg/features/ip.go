package features

import "regexp"

// ipLiteralPattern matches literal IP addresses anywhere in the raw URL,
// not just in the host. Three alternatives: dotted-decimal IPv4 with each
// group constrained to 0-255, the hex-octet dotted form (0xC0.0xA8...),
// and uncompressed IPv6 spelled out as all eight hex groups.
//
// Compressed IPv6 ("::" notation, e.g. http://[::1]/) is NOT matched.
// Known limitation; widening the pattern would shift the feature
// distribution under the trained model.
var ipLiteralPattern = regexp.MustCompile(
	`(([01]?\d\d?|2[0-4]\d|25[0-5])\.){3}([01]?\d\d?|2[0-4]\d|25[0-5])` +
		`|((0x[0-9a-fA-F]{1,2}\.){3}0x[0-9a-fA-F]{1,2})` +
		`|([a-fA-F0-9]{1,4}:){7}[a-fA-F0-9]{1,4}`)

// HavingIPAddress returns -1 when the raw URL contains a literal IP
// address, 1 otherwise.
func HavingIPAddress(rawURL string) int {
	if ipLiteralPattern.MatchString(rawURL) {
		return -1
	}
	return 1
}
