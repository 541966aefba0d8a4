// Package encrypter hashes passwords with bcrypt.
package encrypter

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	dErrors "shiptrack/pkg/domain-errors"
)

// Bcrypt implements password hashing at a fixed cost.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a hasher. Costs outside bcrypt's range fall back to
// bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(value string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(value), b.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeInvalidInput, "pass is too long")
		}
		return "", fmt.Errorf("could not hash value: %w", err)
	}
	return string(hashed), nil
}

// Compare reports whether value matches hash. A mismatch is not an error.
func (b *Bcrypt) Compare(value, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(value))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("could not compare value: %w", err)
	}
}
