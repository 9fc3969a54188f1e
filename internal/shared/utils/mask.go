package utils

import "strings"

const (
	secretVisiblePrefix = 8
	secretMaskLength    = 24
)

// MaskSecret masks a provider secret for display: the first 8 characters stay
// visible, the remainder is replaced by a fixed run of 24 asterisks regardless
// of the real secret length, so the masked form never leaks the length.
// Example: "sk_test_4f8b2c1a..." -> "sk_test_************************"
func MaskSecret(secret string) string {
	visible := secret
	if len(secret) > secretVisiblePrefix {
		visible = secret[:secretVisiblePrefix]
	}
	return visible + strings.Repeat("*", secretMaskLength)
}
