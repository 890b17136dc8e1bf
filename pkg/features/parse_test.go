package features

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		wantOK     bool
		wantScheme string
		wantHost   string
		wantPath   string
	}{
		{
			name:       "full HTTPS URL",
			url:        "https://example.com/path/to/page",
			wantOK:     true,
			wantScheme: "https",
			wantHost:   "example.com",
			wantPath:   "/path/to/page",
		},
		{
			name:       "URL with query",
			url:        "http://example.com/search?q=test",
			wantOK:     true,
			wantScheme: "http",
			wantHost:   "example.com",
			wantPath:   "/search",
		},
		{
			name:   "empty string",
			url:    "",
			wantOK: false,
		},
		{
			name:   "not a url",
			url:    "not a url",
			wantOK: false,
		},
		{
			name:   "bare path has no host",
			url:    "/just/a/path",
			wantOK: false,
		},
		{
			name:   "scheme-less host-path string",
			url:    "example.com/a/b",
			wantOK: false,
		},
		{
			name:   "malformed percent encoding",
			url:    "http://example.com/%zz%",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.url)
			if got.OK != tt.wantOK {
				t.Fatalf("Parse(%q).OK = %v, want %v", tt.url, got.OK, tt.wantOK)
			}
			if !tt.wantOK {
				// Unparseable must collapse to the all-empty result.
				if got.Scheme != "" || got.Host != "" || got.Path != "" || got.Query != "" {
					t.Errorf("Parse(%q) unparseable result not empty: %+v", tt.url, got)
				}
				return
			}
			if got.Scheme != tt.wantScheme {
				t.Errorf("Scheme = %q, want %q", got.Scheme, tt.wantScheme)
			}
			if got.Host != tt.wantHost {
				t.Errorf("Host = %q, want %q", got.Host, tt.wantHost)
			}
			if got.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", got.Path, tt.wantPath)
			}
		})
	}
}

func TestParse_NeverPanics(t *testing.T) {
	// A small pile of garbage inputs; Parse must return, not panic.
	inputs := []string{
		"", " ", "::", "http://", "http://%41", "ht!tp://x", "\x00",
		"https://", "//missing-scheme.com", string([]byte{0xff, 0xfe}),
	}
	for _, in := range inputs {
		_ = Parse(in)
	}
}
