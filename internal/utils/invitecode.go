package utils

import (
	"crypto/rand"
	"fmt"
)

// inviteCodeLength is the length of generated family invite codes
const inviteCodeLength = 8

// inviteCodeCharset omits ambiguous characters (0/O, 1/I/L)
const inviteCodeCharset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// GenerateInviteCode creates a random family invite code.
// Uniqueness is enforced by the database constraint; callers retry on collision.
func GenerateInviteCode() (string, error) {
	bytes := make([]byte, inviteCodeLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate invite code: %w", err)
	}
	for i, b := range bytes {
		bytes[i] = inviteCodeCharset[int(b)%len(inviteCodeCharset)]
	}
	return string(bytes), nil
}
