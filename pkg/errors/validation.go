package errors

import (
	"net/url"
	"strings"
	"unicode"
)

// ValidatePath validates a path relative to the portfolio document, such
// as an intro markdown file or an avatar image.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths
//   - No path traversal sequences (..)
//   - No backslashes
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}
	return nil
}

// ValidateURL validates that rawURL is an absolute http or https URL.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidURL, "URL cannot be empty")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidURL, err, "malformed URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return New(ErrCodeInvalidURL, "URL must use http or https scheme: %q", rawURL)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidURL, "URL has no host: %q", rawURL)
	}
	return nil
}

// ValidateLink validates a social link target. In addition to web URLs it
// accepts mailto: addresses.
func ValidateLink(rawURL string) error {
	if addr, ok := strings.CutPrefix(rawURL, "mailto:"); ok {
		if !strings.Contains(addr, "@") {
			return New(ErrCodeInvalidURL, "mailto link has no address: %q", rawURL)
		}
		return nil
	}
	return ValidateURL(rawURL)
}

// ValidateIdentifier validates a section name or theme ID: non-empty,
// at most 64 characters, letters, digits, '-' and '_' only.
func ValidateIdentifier(code Code, kind, id string) error {
	if id == "" {
		return New(code, "%s cannot be empty", kind)
	}
	if len(id) > 64 {
		return New(code, "%s too long (max 64 characters): %q", kind, id)
	}
	for _, r := range id {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return New(code, "%s contains invalid character %q: %q", kind, r, id)
		}
	}
	return nil
}
