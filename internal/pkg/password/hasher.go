// Package password wraps adaptive password hashing for credential records.
//
// Hashes are bcrypt blobs: the output encodes algorithm, cost factor, and a
// random salt alongside the digest, so verification is self-describing and a
// future cost increase keeps old hashes verifiable.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes plaintext secrets and verifies candidates against stored
// blobs in constant time.
type Hasher struct {
	cost int
}

// New returns a Hasher with the given bcrypt cost. Costs outside the valid
// bcrypt range fall back to the library default.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt blob for plaintext. A fresh random salt is drawn
// per call, so hashing the same plaintext twice yields different blobs.
func (h *Hasher) Hash(plaintext string) (string, error) {
	blob, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(blob), nil
}

// Verify reports whether plaintext matches the stored blob. The comparison
// does not short-circuit on the first mismatching byte, and a malformed blob
// is reported as a mismatch rather than an error.
func (h *Hasher) Verify(plaintext, blob string) bool {
	return bcrypt.CompareHashAndPassword([]byte(blob), []byte(plaintext)) == nil
}
