// Package auth implements the credential-hashing and bearer-token primitives
// used by the auth usecase.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past 72 bytes, so longer inputs are cut down
// deterministically before hashing AND before verification. Two passwords
// that differ only past this boundary are the same credential.
const maxPasswordBytes = 72

// Hasher produces and verifies salted bcrypt hashes. The output string is
// self-describing (algorithm, cost, and salt are embedded), so the cost can
// be raised later without invalidating stored hashes. Stateless and safe for
// concurrent use.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

func (h *Hasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncate(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether password matches the stored hash. A malformed hash
// is treated as a mismatch, never an error.
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(password)) == nil
}

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
