package utils

import (
	"fmt"
	"net/url"
	"strings"

	apperrors "github.com/shortify/shortify/internal/errors"
)

const (
	MinAliasLength = 3
	MaxAliasLength = 16
)

func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return apperrors.NewValidationError("long_url", "URL cannot be empty")
	}

	if len(rawURL) > 2048 {
		return apperrors.NewValidationError("long_url", "URL is too long (max 2048 characters)")
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return apperrors.NewValidationError("long_url", fmt.Sprintf("invalid URL format: %v", err))
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return apperrors.NewValidationError("long_url", "URL must start with http:// or https://")
	}

	if parsedURL.Host == "" {
		return apperrors.NewValidationError("long_url", "URL must contain a valid host")
	}

	return nil
}

// ValidateAlias checks a caller-supplied short code: alphanumeric, 3-16 characters.
func ValidateAlias(alias string) error {
	if len(alias) < MinAliasLength || len(alias) > MaxAliasLength {
		return apperrors.NewValidationError("custom_alias",
			fmt.Sprintf("alias length must be %d-%d characters", MinAliasLength, MaxAliasLength))
	}

	for _, r := range alias {
		if !isAlphanumeric(r) {
			return apperrors.NewValidationError("custom_alias", "alias must be alphanumeric")
		}
	}

	return nil
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func SanitizeInput(input string) string {
	// Strip control characters and trim whitespace
	result := strings.Map(func(r rune) rune {
		if r < 32 && r != '\t' && r != '\n' && r != '\r' {
			return -1
		}
		return r
	}, input)

	return strings.TrimSpace(result)
}
