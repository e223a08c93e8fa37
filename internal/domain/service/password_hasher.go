// Package service defines interfaces for stateless domain logic that does
// not belong to a single entity.
package service

// PasswordHasher hashes credentials and enforces the configured password
// policy. Implementations choose the algorithm; the domain only sees the
// opaque hash string.
type PasswordHasher interface {
	// Hash derives a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength applies the strength rules: minimum length,
	// uppercase letter, digit and symbol requirements.
	ValidatePasswordStrength(password string) error
}
