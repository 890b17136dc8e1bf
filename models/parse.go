package models

// ParseResult is the best-effort decomposition of a raw URL string.
// It is an explicit sum type: OK=true carries the parsed components,
// OK=false is the single "unparseable" result with every field empty.
// A URL whose host is empty is treated identically to one that failed
// to parse, so every downstream feature sees the same view.
type ParseResult struct {
	Scheme string
	Host   string
	Path   string
	Query  string
	OK     bool
}

// Unparseable returns the canonical failed parse result.
func Unparseable() ParseResult {
	return ParseResult{}
}
