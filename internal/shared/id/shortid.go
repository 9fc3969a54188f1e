package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12
)

// Prefixes for different entity types (Stripe-style)
const (
	PrefixAPI      = "api"
	PrefixAPIKey   = "key"
	PrefixRatePlan = "plan"
)

// Generate creates a random short ID with the specified length using Base62 encoding.
// The generated ID is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random short ID and panics on error.
// Use this only when you're certain the generation won't fail.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateWithPrefix creates a prefixed ID in the format "prefix_randomstring".
// This follows the Stripe-style ID pattern for human-readable identifiers.
func GenerateWithPrefix(prefix string, length int) (string, error) {
	id, err := Generate(length)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s", prefix, id), nil
}

// MustGenerateWithPrefix creates a prefixed ID and panics on error.
func MustGenerateWithPrefix(prefix string, length int) string {
	id, err := GenerateWithPrefix(prefix, length)
	if err != nil {
		panic(err)
	}
	return id
}

// FormatWithPrefix adds a prefix to an existing short ID.
// Example: FormatWithPrefix("plan", "xK9mP2vL3nQa") returns "plan_xK9mP2vL3nQa"
func FormatWithPrefix(prefix, shortID string) string {
	if shortID == "" {
		return ""
	}
	return fmt.Sprintf("%s_%s", prefix, shortID)
}

// ParsePrefixedID splits a prefixed ID into its prefix and short ID parts.
// Returns an error when the ID does not contain an underscore separator.
func ParsePrefixedID(prefixedID string) (prefix, shortID string, err error) {
	idx := strings.Index(prefixedID, "_")
	if idx < 0 {
		return "", "", fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	return prefixedID[:idx], prefixedID[idx+1:], nil
}

// ValidatePrefix checks that a prefixed ID carries the expected entity prefix.
func ValidatePrefix(prefixedID, expectedPrefix string) error {
	prefix, _, err := ParsePrefixedID(prefixedID)
	if err != nil {
		return err
	}
	if prefix != expectedPrefix {
		return fmt.Errorf("unexpected ID prefix: got %q, want %q", prefix, expectedPrefix)
	}
	return nil
}

// NewAPIID generates a new prefixed ID for an API product.
func NewAPIID() (string, error) {
	return GenerateWithPrefix(PrefixAPI, DefaultLength)
}

// NewAPIKeyID generates a new prefixed ID for a provider credential.
func NewAPIKeyID() (string, error) {
	return GenerateWithPrefix(PrefixAPIKey, DefaultLength)
}

// NewRatePlanID generates a new prefixed ID for a rate plan.
func NewRatePlanID() (string, error) {
	return GenerateWithPrefix(PrefixRatePlan, DefaultLength)
}
