package validation

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

// SlugPattern defines the valid slug format: lowercase alphanumeric and hyphens.
var SlugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// ValidateSlug checks if a slug matches the allowed pattern.
func ValidateSlug(slug string) bool {
	if slug == "" || len(slug) > 100 {
		return false
	}
	return SlugPattern.MatchString(slug)
}

// Slugify derives a URL slug from a display name: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, no leading or
// trailing hyphens. Callers needing uniqueness append their own suffix.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ValidateName checks a business or place name for presence and length.
func ValidateName(name string) (bool, string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false, "Name is required"
	}
	if len(trimmed) > 200 {
		return false, "Name must be 200 characters or fewer"
	}
	return true, ""
}

// ValidateEmail checks an optional email address. Empty is allowed.
func ValidateEmail(email string) (bool, string) {
	if email == "" {
		return true, ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return false, "Invalid email address"
	}
	return true, ""
}

// ValidateRating checks a review rating is within the 1-5 scale.
func ValidateRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// This prevents javascript:, data:, vbscript:, and other dangerous URL schemes.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// IsPrivateIP checks if an IP address is in a private/reserved range.
// Used to prevent SSRF attacks against internal networks.
func IsPrivateIP(ip net.IP) bool {
	if ip == nil {
		return false
	}

	if ip.IsLoopback() {
		return true
	}

	if ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
		return true
	}

	if ip.IsPrivate() {
		return true
	}

	if ip.IsUnspecified() {
		return true
	}

	// Cloud metadata endpoints (AWS/GCP and Azure)
	if ip.Equal(net.ParseIP("169.254.169.254")) {
		return true
	}
	if ip.Equal(net.ParseIP("168.63.129.16")) {
		return true
	}

	return false
}

// IsPrivateHost checks if a hostname resolves to a private IP address.
// Returns true if the host is private/blocked, false if it's safe to access.
func IsPrivateHost(host string) (bool, error) {
	hostname := host
	if h, _, err := net.SplitHostPort(host); err == nil {
		hostname = h
	}

	ips, err := net.LookupIP(hostname)
	if err != nil {
		// If we can't resolve, be conservative and block
		return true, err
	}

	for _, ip := range ips {
		if IsPrivateIP(ip) {
			return true, nil
		}
	}

	return false, nil
}

// ValidateURLForWebsiteCheck validates a URL is safe for the background
// website checker. Blocks private IPs, localhost, and cloud metadata
// endpoints.
func ValidateURLForWebsiteCheck(urlStr string) (bool, string) {
	valid, msg := ValidateURL(urlStr)
	if !valid {
		return false, msg
	}

	u, _ := url.Parse(urlStr)

	isPrivate, err := IsPrivateHost(u.Host)
	if err != nil {
		return false, "Cannot resolve hostname"
	}
	if isPrivate {
		return false, "URL points to a private or reserved IP address"
	}

	return true, ""
}
