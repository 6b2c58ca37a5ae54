package validation

import (
	"net"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Chai Corner", "chai-corner"},
		{"already slug", "chai-corner", "chai-corner"},
		{"punctuation run", "Raju's  Pav & Bhaji!!", "raju-s-pav-bhaji"},
		{"leading trailing junk", "  --Surat Sweets--  ", "surat-sweets"},
		{"digits kept", "24x7 Medical Store", "24x7-medical-store"},
		{"unicode stripped", "चाय की दुकान", ""},
		{"mixed unicode", "Chai की Dukaan", "chai-dukaan"},
		{"empty", "", ""},
		{"only punctuation", "@#$%", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.in)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name string
		slug string
		want bool
	}{
		{"valid", "adajan", true},
		{"valid with hyphen", "city-light", true},
		{"valid with digits", "ring-road-2", true},
		{"empty", "", false},
		{"uppercase", "Adajan", false},
		{"underscore", "city_light", false},
		{"space", "city light", false},
		{"dot", "city.light", false},
		{"too long", strings.Repeat("a", 101), false},
		{"max length", strings.Repeat("a", 100), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateSlug(tt.slug)
			if got != tt.want {
				t.Errorf("ValidateSlug(%q) = %v, want %v", tt.slug, got, tt.want)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		valid bool
	}{
		{"normal", "Surat Sweets", true},
		{"hindi", "सूरत मिठाई", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"too long", strings.Repeat("x", 201), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, _ := ValidateName(tt.in)
			if valid != tt.valid {
				t.Errorf("ValidateName(%q) = %v, want %v", tt.in, valid, tt.valid)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"empty allowed", "", true},
		{"valid", "shop@example.com", true},
		{"valid with name", "Shop <shop@example.com>", true},
		{"missing at", "shopexample.com", false},
		{"missing domain", "shop@", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, _ := ValidateEmail(tt.email)
			if valid != tt.valid {
				t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, valid, tt.valid)
			}
		})
	}
}

func TestValidateRating(t *testing.T) {
	for rating, want := range map[int]bool{0: false, 1: true, 3: true, 5: true, 6: false, -1: false} {
		if got := ValidateRating(rating); got != want {
			t.Errorf("ValidateRating(%d) = %v, want %v", rating, got, want)
		}
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		wantMsg string
	}{
		{"valid https", "https://example.com", true, ""},
		{"valid http", "http://example.com", true, ""},
		{"valid with path", "https://example.com/menu", true, ""},
		{"valid with port", "https://example.com:8080", true, ""},
		{"empty string", "", false, "URL is required"},
		{"javascript scheme", "javascript:alert(1)", false, "URL must use http:// or https:// scheme"},
		{"data scheme", "data:text/html,x", false, "URL must use http:// or https:// scheme"},
		{"file scheme", "file:///etc/passwd", false, "URL must use http:// or https:// scheme"},
		{"no scheme", "example.com", false, "URL must use http:// or https:// scheme"},
		{"uppercase scheme", "HTTPS://example.com", true, ""},
		{"scheme only", "https://", false, "URL must have a valid host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateURL(%q) valid = %v, want %v", tt.url, valid, tt.valid)
			}
			if !valid && msg != tt.wantMsg {
				t.Errorf("ValidateURL(%q) msg = %q, want %q", tt.url, msg, tt.wantMsg)
			}
		})
	}
}

func TestIsPrivateIP(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		want bool
	}{
		{"localhost IPv4", "127.0.0.1", true},
		{"localhost IPv6", "::1", true},
		{"10.x.x.x range", "10.0.0.1", true},
		{"172.16.x.x range", "172.16.0.1", true},
		{"192.168.x.x range", "192.168.0.1", true},
		{"link-local IPv4", "169.254.1.1", true},
		{"link-local IPv6", "fe80::1", true},
		{"AWS/GCP metadata", "169.254.169.254", true},
		{"Azure metadata", "168.63.129.16", true},
		{"unspecified IPv4", "0.0.0.0", true},
		{"unspecified IPv6", "::", true},
		{"Google DNS", "8.8.8.8", false},
		{"Cloudflare DNS", "1.1.1.1", false},
		{"random public IP", "203.0.113.1", false},
		{"public IPv6", "2001:4860:4860::8888", false},
		{"nil IP", "", false},
		{"172.15.x.x not private", "172.15.255.255", false},
		{"172.32.x.x not private", "172.32.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ip net.IP
			if tt.ip != "" {
				ip = net.ParseIP(tt.ip)
			}
			got := IsPrivateIP(ip)
			if got != tt.want {
				t.Errorf("IsPrivateIP(%q) = %v, want %v", tt.ip, got, tt.want)
			}
		})
	}
}

func TestValidateURLForWebsiteCheck(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		wantMsg string
	}{
		{"javascript scheme", "javascript:alert(1)", false, "URL must use http:// or https:// scheme"},
		{"empty url", "", false, "URL is required"},
		{"localhost", "http://localhost", false, "URL points to a private or reserved IP address"},
		{"127.0.0.1", "http://127.0.0.1", false, "URL points to a private or reserved IP address"},
		{"loopback with port", "http://127.0.0.1:8080", false, "URL points to a private or reserved IP address"},
		{"10.x range", "http://10.0.0.1", false, "URL points to a private or reserved IP address"},
		{"192.168.x range", "http://192.168.1.1", false, "URL points to a private or reserved IP address"},
		{"AWS metadata", "http://169.254.169.254/latest/meta-data/", false, "URL points to a private or reserved IP address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateURLForWebsiteCheck(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateURLForWebsiteCheck(%q) valid = %v, want %v (msg: %s)", tt.url, valid, tt.valid, msg)
			}
			if !valid && tt.wantMsg != "" && msg != tt.wantMsg {
				t.Errorf("ValidateURLForWebsiteCheck(%q) msg = %q, want %q", tt.url, msg, tt.wantMsg)
			}
		})
	}
}
