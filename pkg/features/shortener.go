package features

import "strings"

// shortenerDomains is the fixed list of known link-shortener domains,
// matched as literal substrings anywhere in the raw URL. Deliberately
// permissive: a shortener domain appearing in a path or query still
// flags the URL. The list is versioned data; extending it never changes
// the IsShortened contract.
var shortenerDomains = []string{
	"bit.ly",
	"bit.do",
	"bitly.com",
	"goo.gl",
	"tinyurl",
	"tiny.cc",
	"shorte.st",
	"go2l.ink",
	"x.co",
	"ow.ly",
	"t.co",
	"tr.im",
	"is.gd",
	"cli.gs",
	"yfrog.com",
	"migre.me",
	"ff.im",
	"url4.eu",
	"twit.ac",
	"su.pr",
	"twurl.nl",
	"snipurl.com",
	"short.to",
	"budurl.com",
	"ping.fm",
	"post.ly",
	"just.as",
	"bkite.com",
	"snipr.com",
	"fic.kr",
	"loopt.us",
	"doiop.com",
	"short.ie",
	"kl.am",
	"wp.me",
	"rubyurl.com",
	"om.ly",
	"to.ly",
	"lnkd.in",
	"db.tt",
	"qr.ae",
	"adf.ly",
	"cur.lv",
	"ity.im",
	"q.gs",
	"po.st",
	"bc.vc",
	"u.bb",
	"yourls.org",
	"j.mp",
	"v.gd",
	"cutt.us",
	"1url.com",
	"tweez.me",
	"link.zip.net",
}

// IsShortened returns -1 when the raw URL contains any known shortener
// domain, 1 otherwise.
func IsShortened(rawURL string) int {
	for _, d := range shortenerDomains {
		if strings.Contains(rawURL, d) {
			return -1
		}
	}
	return 1
}

// MatchedShorteners returns every shortener domain found in the raw URL,
// in list order. Used by dataset statistics to rank which services show
// up most.
func MatchedShorteners(rawURL string) []string {
	var matched []string
	for _, d := range shortenerDomains {
		if strings.Contains(rawURL, d) {
			matched = append(matched, d)
		}
	}
	return matched
}
