package utils

import (
	"strings"
	"testing"

	apperrors "github.com/shortify/shortify/internal/errors"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid http URL", "http://example.com", false},
		{"valid https URL", "https://example.com/path?q=1", false},
		{"valid with port", "https://example.com:8443/a", false},
		{"empty URL", "", true},
		{"no scheme", "example.com", true},
		{"unsupported scheme", "ftp://example.com", true},
		{"scheme only", "https://", true},
		{"not a URL", "not-a-url", true},
		{"too long", "https://example.com/" + strings.Repeat("a", 2048), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ValidateURL(%q) expected error, got nil", tt.url)
					return
				}
				if !apperrors.IsValidationError(err) {
					t.Errorf("ValidateURL(%q) expected ValidationError, got %T", tt.url, err)
				}
			} else if err != nil {
				t.Errorf("ValidateURL(%q) unexpected error = %v", tt.url, err)
			}
		})
	}
}

func TestValidateAlias(t *testing.T) {
	tests := []struct {
		name    string
		alias   string
		wantErr bool
	}{
		{"minimum length", "abc", false},
		{"maximum length", "abcdefghijklmnop", false},
		{"mixed case and digits", "Promo2024", false},
		{"digits only", "12345", false},
		{"too short", "ab", true},
		{"too long", "abcdefghijklmnopq", true},
		{"empty", "", true},
		{"hyphen", "my-alias", true},
		{"underscore", "my_alias", true},
		{"space", "my alias", true},
		{"unicode", "пример", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAlias(tt.alias)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ValidateAlias(%q) expected error, got nil", tt.alias)
					return
				}
				if !apperrors.IsValidationError(err) {
					t.Errorf("ValidateAlias(%q) expected ValidationError, got %T", tt.alias, err)
				}
			} else if err != nil {
				t.Errorf("ValidateAlias(%q) unexpected error = %v", tt.alias, err)
			}
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  https://example.com  ", "https://example.com"},
		{"strips control characters", "https://exam\x00ple.com", "https://example.com"},
		{"plain input unchanged", "https://example.com", "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeInput(tt.input); got != tt.want {
				t.Errorf("SanitizeInput(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
