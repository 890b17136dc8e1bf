package features

import "testing"

func TestHavingIPAddress(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want int
	}{
		{"dotted IPv4 host", "http://192.168.1.1/x", -1},
		{"IPv4 in path", "http://example.com/redirect/10.0.0.1", -1},
		{"hex-octet IPv4", "http://0xC0.0xA8.0x01.0x01/login", -1},
		{"uncompressed IPv6", "http://2001:0db8:85a3:0000:0000:8a2e:0370:7334/", -1},
		{"domain host", "https://example.com", 1},
		{"digits but not an IP", "https://example.com/v2.1.3", 1},
		{"group over 255", "http://999.999.999.999/", 1},
		// Known limitation: compressed IPv6 is not detected. The pattern
		// requires all eight groups spelled out.
		{"compressed IPv6 loopback", "http://[::1]/", 1},
		{"empty string", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HavingIPAddress(tt.url); got != tt.want {
				t.Errorf("HavingIPAddress(%q) = %d, want %d", tt.url, got, tt.want)
			}
		})
	}
}

func TestIsShortened(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want int
	}{
		{"bit.ly", "http://bit.ly/abc", -1},
		{"tinyurl", "https://tinyurl.com/y8s1", -1},
		{"goo.gl", "https://goo.gl/maps/xyz", -1},
		{"shortener in path is still flagged", "http://example.com/out?to=bit.ly/abc", -1},
		{"plain domain", "http://example.com/abc", 1},
		{"empty string", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsShortened(tt.url); got != tt.want {
				t.Errorf("IsShortened(%q) = %d, want %d", tt.url, got, tt.want)
			}
		})
	}
}

func TestMatchedShorteners(t *testing.T) {
	got := MatchedShorteners("http://bit.ly/x?mirror=tinyurl.com/y")
	want := map[string]bool{"bit.ly": true, "tinyurl": true}
	if len(got) != len(want) {
		t.Fatalf("MatchedShorteners() = %v, want domains %v", got, want)
	}
	for _, d := range got {
		if !want[d] {
			t.Errorf("unexpected match %q", d)
		}
	}

	if got := MatchedShorteners("http://example.com"); got != nil {
		t.Errorf("MatchedShorteners(clean URL) = %v, want nil", got)
	}
}
