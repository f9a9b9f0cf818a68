package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the default bcrypt work factor. Each +1 doubles the hashing
// time, so this needs to stay within ordinary request-latency budgets.
const DefaultCost = 10

// MaxPasswordLen is bcrypt's input ceiling; bytes past it would never
// affect the hash.
const MaxPasswordLen = 72

// ErrMismatch is returned by VerifyPassword when the candidate password does
// not match the stored hash.
var ErrMismatch = errors.New("cryptox: password does not match")

// ErrPasswordTooLong is returned by HashPassword when the plaintext exceeds
// MaxPasswordLen bytes.
var ErrPasswordTooLong = errors.New("cryptox: password exceeds 72 bytes")

// HashPassword hashes a plaintext password with bcrypt at the given cost. The
// salt and cost are embedded in the output, so two calls with the same
// plaintext produce different hashes and the cost can be raised later without
// breaking previously stored hashes.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext candidate against a stored bcrypt hash.
// The comparison of the derived bytes is constant time. A merely-wrong
// password yields ErrMismatch; any other error means the stored hash itself
// is structurally invalid.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
