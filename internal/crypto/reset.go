package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// ResetTokenLength is the length of a hex-encoded reset token.
const ResetTokenLength = 40

// GenerateResetToken returns a cryptographically random password-reset
// token: 20 random bytes, hex-encoded.
func GenerateResetToken() (string, error) {
	buf := make([]byte, ResetTokenLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
