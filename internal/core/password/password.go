// Package password wraps bcrypt hashing and verification of account
// passwords. Each Hash call embeds a fresh random salt, so hashing the
// same plaintext twice yields two different stored values.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor. 10 keeps a single hash in the tens of
// milliseconds on current hardware.
const Cost = 10

// Hash derives a one-way salted hash from plain.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// Verify reports whether plain matches hashed. A mismatch returns
// (false, nil); a non-nil error means the stored hash itself is unusable
// (malformed, truncated) and must not be surfaced as "wrong password".
func Verify(plain, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("verify password: %w", err)
}
