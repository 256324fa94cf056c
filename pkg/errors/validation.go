package errors

import (
	"strings"
	"unicode"
)

// maxProfileLen bounds profile names; they end up in file names and store keys.
const maxProfileLen = 64

// ValidateProfile validates a high-score profile name.
//
// Profile names become file names, redis keys and document IDs, so the rules
// are conservative:
//   - not empty
//   - at most 64 characters
//   - letters, digits, '-', '_' and '.' only
//   - no ".." sequence
func ValidateProfile(name string) error {
	if name == "" {
		return New(ErrCodeInvalidProfile, "profile name cannot be empty")
	}
	if len(name) > maxProfileLen {
		return New(ErrCodeInvalidProfile, "profile name too long (max %d characters)", maxProfileLen)
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidProfile, "profile name contains invalid characters: %q", "..")
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
			continue
		}
		return New(ErrCodeInvalidProfile, "profile name contains invalid character %q", r)
	}
	return nil
}

// ValidatePositive returns an INVALID_CONFIG error when v is not > 0.
// NaN is rejected.
func ValidatePositive(field string, v float64) error {
	if !(v > 0) {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %v", field, v)
	}
	return nil
}
