package errors

import (
	"strings"
	"unicode"
)

// ValidateFeedUser validates a feed username or user ID before it is
// interpolated into a provider URL. The rules are intentionally
// conservative: provider-specific shapes (numeric Goodreads IDs, lowercase
// Letterboxd handles) are left to the providers themselves.
func ValidateFeedUser(user string) error {
	if user == "" {
		return New(ErrCodeMissingSource, "feed user is required")
	}
	if len(user) > 64 {
		return New(ErrCodeInvalidSource, "feed user too long (max 64 characters)")
	}

	for _, r := range user {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidSource, "feed user contains whitespace or control characters")
		}
	}

	// Path traversal patterns have no business in a username.
	for _, pattern := range []string{"..", "/", "\\"} {
		if strings.Contains(user, pattern) {
			return New(ErrCodeInvalidSource, "feed user contains invalid sequence %q", pattern)
		}
	}
	return nil
}
