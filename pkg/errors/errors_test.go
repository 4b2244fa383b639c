package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidConfig, "bad width: %d", -1)

	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidConfig)
	}
	if err.Message != "bad width: -1" {
		t.Errorf("Message = %q", err.Message)
	}
	if want := "INVALID_CONFIG: bad width: -1"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(ErrCodeNetwork, cause, "fetch feed")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should see through the wrapper")
	}
	if want := "NETWORK_ERROR: fetch feed: connection refused"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeFeedEmpty, "no items")

	if !Is(err, ErrCodeFeedEmpty) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeNetwork) {
		t.Error("Is() = true for different code")
	}
	if Is(errors.New("plain"), ErrCodeFeedEmpty) {
		t.Error("Is() = true for a plain error")
	}
	if Is(nil, ErrCodeFeedEmpty) {
		t.Error("Is() = true for nil")
	}
}

func TestIsNested(t *testing.T) {
	inner := New(ErrCodeMissingAPIKey, "no key")
	outer := fmt.Errorf("starting up: %w", inner)

	if !Is(outer, ErrCodeMissingAPIKey) {
		t.Error("Is() should find the code through fmt wrapping")
	}
}

func TestValidateFeedUser(t *testing.T) {
	valid := []string{"12345", "someone", "a_user-name", "dots.are.fine"}
	for _, user := range valid {
		if err := ValidateFeedUser(user); err != nil {
			t.Errorf("ValidateFeedUser(%q) = %v, want nil", user, err)
		}
	}

	invalid := []struct {
		user string
		code Code
	}{
		{"", ErrCodeMissingSource},
		{"user name", ErrCodeInvalidSource},
		{"user\x00", ErrCodeInvalidSource},
		{"../../etc/passwd", ErrCodeInvalidSource},
		{"a/b", ErrCodeInvalidSource},
		{"back\\slash", ErrCodeInvalidSource},
		{strings.Repeat("t", 65), ErrCodeInvalidSource},
	}
	for _, tt := range invalid {
		err := ValidateFeedUser(tt.user)
		if err == nil {
			t.Errorf("ValidateFeedUser(%q) = nil, want error", tt.user)
			continue
		}
		if !Is(err, tt.code) {
			t.Errorf("ValidateFeedUser(%q) code = %v, want %v", tt.user, GetCode(err), tt.code)
		}
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeFeedNotFound, "gone")); got != ErrCodeFeedNotFound {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeFeedNotFound)
	}
	if got := GetCode(errors.New("plain")); got != ErrCodeInternal {
		t.Errorf("GetCode() = %v, want internal fallback", got)
	}
}
