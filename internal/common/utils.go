package common

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// ErrInvalidURL is returned for URLs that stay malformed after sanitization.
var ErrInvalidURL = errors.New("invalid URL")

var (
	markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)
	urlPattern          = regexp.MustCompile(`^https?://[a-zA-Z0-9][-a-zA-Z0-9.]*[a-zA-Z0-9](:[0-9]+)?(/[^\s]*)?$`)
)

// SanitizeURL performs basic cleanup on URLs to handle common copy-paste issues.
// Removes whitespace, trailing punctuation and markdown artifacts.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	// [text](url) -> url
	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	// "https://example.com," -> "https://example.com"
	trailingChars := []string{",", ".", ")", "}", "]", "\"", "'", ">", ";"}
	for _, char := range trailingChars {
		cleaned = strings.TrimSuffix(cleaned, char)
	}

	// "(https://example.com" -> "https://example.com"
	leadingChars := []string{"(", "[", "<", "\"", "'"}
	for _, char := range leadingChars {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	return strings.TrimSpace(cleaned)
}

// SanitizeAndValidateURL sanitizes rawURL and checks that it is an absolute
// http(s) URL with a plausible host.
func SanitizeAndValidateURL(rawURL string) (string, error) {
	cleaned := SanitizeURL(rawURL)

	if cleaned == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidURL)
	}

	// Spaces must be pre-encoded as %20
	if strings.Contains(cleaned, " ") {
		return "", fmt.Errorf("%w: %q contains spaces", ErrInvalidURL, rawURL)
	}

	if !urlPattern.MatchString(cleaned) {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, parsed.Scheme)
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidURL, rawURL)
	}

	if strings.ContainsAny(parsed.Host, "{}[]<>\"'") {
		return "", fmt.Errorf("%w: malformed host %q", ErrInvalidURL, parsed.Host)
	}

	return cleaned, nil
}
