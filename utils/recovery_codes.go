package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	RecoveryCodeLength = 8
	NumRecoveryCodes   = 10
)

// GenerateRecoveryCodes generates a set of random 2FA recovery codes.
func GenerateRecoveryCodes() ([]string, error) {
	codes := make([]string, NumRecoveryCodes)

	for i := 0; i < NumRecoveryCodes; i++ {
		bytes := make([]byte, RecoveryCodeLength/2)
		if _, err := rand.Read(bytes); err != nil {
			return nil, err
		}

		code := strings.ToUpper(hex.EncodeToString(bytes))
		// Insert hyphen in middle for readability
		codes[i] = code[:4] + "-" + code[4:]
	}

	return codes, nil
}

// HashString returns the hex-encoded SHA-256 of s.
func HashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HashRecoveryCodes hashes the recovery codes for storage. Codes are
// normalized (uppercased, hyphen removed) so user input can be matched
// regardless of formatting.
func HashRecoveryCodes(codes []string) []string {
	hashedCodes := make([]string, len(codes))
	for i, code := range codes {
		hashedCodes[i] = HashString(NormalizeRecoveryCode(code))
	}
	return hashedCodes
}

// NormalizeRecoveryCode strips formatting from a recovery code.
func NormalizeRecoveryCode(code string) string {
	return strings.ToUpper(strings.ReplaceAll(code, "-", ""))
}
