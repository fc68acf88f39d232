// Package password hashes and checks account secrets with bcrypt.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptySecret = errors.New("secret must not be empty")
	ErrMismatch    = errors.New("secret does not match hash")
)

// Hasher is a bcrypt hasher with a fixed cost.
type Hasher struct {
	cost int
}

// NewHasher clamps cost into bcrypt's accepted range.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of secret.
func (h *Hasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	b, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	return string(b), err
}

// Compare reports ErrMismatch when secret does not produce hash. Other
// errors mean the stored hash itself is unusable.
func (h *Hasher) Compare(secret, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}
	return nil
}
