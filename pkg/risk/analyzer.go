// Package risk scores a single URL against lexical risk heuristics.
// It complements the fixed feature vector in pkg/features: the feature
// vector feeds the trained model, while these heuristics back the
// human-readable analysis shown by `urlsift inspect`. Everything here
// is computed from the URL text alone; no network access.
package risk

import (
	"regexp"
	"strings"

	"github.com/urlsift/urlsift/pkg/features"
	"golang.org/x/net/publicsuffix"
)

type factor struct {
	Weight    float64
	Threshold float64
}

// riskFactors holds the weight and saturation threshold per risk
// dimension. Weights sum to 1.0.
var riskFactors = map[string]factor{
	"length":              {Weight: 0.15, Threshold: 75},
	"special_chars":       {Weight: 0.20, Threshold: 10},
	"subdomain_depth":     {Weight: 0.15, Threshold: 3},
	"path_depth":          {Weight: 0.10, Threshold: 4},
	"suspicious_keywords": {Weight: 0.25, Threshold: 3},
	"tld_risk":            {Weight: 0.15, Threshold: 1},
}

// highRiskTLDs are public suffixes with a high share of abusive
// registrations.
var highRiskTLDs = map[string]bool{
	"tk": true, "ml": true, "ga": true, "cf": true, "gq": true,
	"xyz": true, "work": true, "click": true, "bid": true,
}

// suspiciousKeywords are phishing-bait terms matched case-insensitively
// anywhere in the URL.
var suspiciousKeywords = []string{
	"login", "signin", "verify", "security", "update", "account",
	"payment", "confirm", "password", "banking", "secure", "authenticate",
}

var specialCharPattern = regexp.MustCompile(`[^a-zA-Z0-9./\-]`)
var digitPattern = regexp.MustCompile(`\d`)

// Analysis is the structural breakdown of one URL.
type Analysis struct {
	URLLength        int      `json:"url_length" yaml:"url_length"`
	SpecialCharCount int      `json:"special_chars_count" yaml:"special_chars_count"`
	SubdomainDepth   int      `json:"subdomain_depth" yaml:"subdomain_depth"`
	PathDepth        int      `json:"path_depth" yaml:"path_depth"`
	FoundKeywords    []string `json:"found_keywords,omitempty" yaml:"found_keywords,omitempty"`
	TLD              string   `json:"tld,omitempty" yaml:"tld,omitempty"`
	UsesHTTPS        bool     `json:"uses_https" yaml:"uses_https"`
	HasIPAddress     bool     `json:"has_ip_address" yaml:"has_ip_address"`
	ExcessiveDots    bool     `json:"excessive_dots" yaml:"excessive_dots"`
	NumericDomain    bool     `json:"numeric_domain" yaml:"numeric_domain"`
	DomainLength     int      `json:"domain_length" yaml:"domain_length"`
	PathLength       int      `json:"path_length" yaml:"path_length"`
	QueryLength      int      `json:"query_length" yaml:"query_length"`
}

// Insights buckets the analysis into reviewer-facing findings.
type Insights struct {
	HighRisk     []string `json:"high_risk_factors,omitempty" yaml:"high_risk_factors,omitempty"`
	ModerateRisk []string `json:"moderate_risk_factors,omitempty" yaml:"moderate_risk_factors,omitempty"`
	Positives    []string `json:"security_positives,omitempty" yaml:"security_positives,omitempty"`
}

// Analyze breaks a raw URL into its structural risk signals. It uses
// the same parse authority as the feature extractor, so an unparseable
// URL degrades to zeroed fields rather than failing.
func Analyze(rawURL string) Analysis {
	parsed := features.Parse(rawURL)
	host := hostOnly(parsed.Host)
	domain, subdomain, tld := splitDomain(host)

	a := Analysis{
		URLLength:        features.URLLength(rawURL),
		SpecialCharCount: len(specialCharPattern.FindAllString(rawURL, -1)),
		SubdomainDepth:   labelCount(subdomain),
		PathDepth:        segmentCount(parsed.Path),
		TLD:              tld,
		UsesHTTPS:        parsed.Scheme == "https",
		HasIPAddress:     features.HavingIPAddress(rawURL) == -1,
		ExcessiveDots:    strings.Count(rawURL, ".") > 3,
		NumericDomain:    digitPattern.MatchString(domain),
		DomainLength:     len(domain),
		PathLength:       features.PathLength(parsed),
		QueryLength:      len(parsed.Query),
	}

	lower := strings.ToLower(rawURL)
	for _, kw := range suspiciousKeywords {
		if strings.Contains(lower, kw) {
			a.FoundKeywords = append(a.FoundKeywords, kw)
		}
	}

	return a
}

// Score computes the weighted risk score in [0,1] and the per-factor
// sub-scores that produced it.
func Score(a Analysis) (float64, map[string]float64) {
	scores := map[string]float64{
		"length":              clamp(float64(a.URLLength) / riskFactors["length"].Threshold),
		"special_chars":       clamp(float64(a.SpecialCharCount) / riskFactors["special_chars"].Threshold),
		"subdomain_depth":     clamp(float64(a.SubdomainDepth) / riskFactors["subdomain_depth"].Threshold),
		"path_depth":          clamp(float64(a.PathDepth) / riskFactors["path_depth"].Threshold),
		"suspicious_keywords": clamp(float64(len(a.FoundKeywords)) / riskFactors["suspicious_keywords"].Threshold),
	}
	if highRiskTLDs[a.TLD] {
		scores["tld_risk"] = 1.0
	} else {
		scores["tld_risk"] = 0.0
	}

	total := 0.0
	for name, score := range scores {
		total += score * riskFactors[name].Weight
	}
	return total, scores
}

// BuildInsights turns an analysis into reviewer-facing findings.
func BuildInsights(a Analysis) Insights {
	var in Insights

	if a.URLLength > 75 {
		in.HighRisk = append(in.HighRisk, "unusually long URL, often associated with phishing")
	}
	if a.SpecialCharCount > 10 {
		in.HighRisk = append(in.HighRisk, "high special-character count, commonly used to obfuscate URLs")
	}
	if a.HasIPAddress {
		in.HighRisk = append(in.HighRisk, "uses a literal IP address instead of a domain name")
	}
	if highRiskTLDs[a.TLD] {
		in.HighRisk = append(in.HighRisk, "registered under a high-risk TLD ("+a.TLD+")")
	}

	if a.SubdomainDepth > 3 {
		in.ModerateRisk = append(in.ModerateRisk, "multiple subdomain levels, possible URL manipulation")
	}
	if len(a.FoundKeywords) > 0 {
		in.ModerateRisk = append(in.ModerateRisk, "contains suspicious keywords: "+strings.Join(a.FoundKeywords, ", "))
	}

	if a.UsesHTTPS {
		in.Positives = append(in.Positives, "uses HTTPS")
	}
	if !a.ExcessiveDots {
		in.Positives = append(in.Positives, "normal number of dots")
	}

	return in
}

func clamp(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	return v
}

// hostOnly strips an optional :port from a host.
func hostOnly(host string) string {
	if i := strings.LastIndex(host, ":"); i >= 0 && !strings.Contains(host, "]") {
		return host[:i]
	}
	return host
}

// splitDomain separates host into registrable domain label, subdomain
// prefix and public suffix. IP hosts and unparseable hosts return empty
// components.
func splitDomain(host string) (domain, subdomain, tld string) {
	if host == "" {
		return "", "", ""
	}

	suffix, _ := publicsuffix.PublicSuffix(host)
	etldPlusOne, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", "", suffix
	}

	domain = strings.TrimSuffix(etldPlusOne, "."+suffix)
	subdomain = strings.TrimSuffix(strings.TrimSuffix(host, etldPlusOne), ".")
	return domain, subdomain, suffix
}

// labelCount counts dot-separated labels, 0 for the empty string.
func labelCount(s string) int {
	if s == "" {
		return 0
	}
	return len(strings.Split(s, "."))
}

// segmentCount counts non-empty path segments.
func segmentCount(path string) int {
	n := 0
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			n++
		}
	}
	return n
}
