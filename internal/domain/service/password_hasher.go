// Package service declares the domain's ports to stateless infrastructure:
// hashing, tokens, notifications, storage and event publishing.
package service

// PasswordHasher stores and verifies local staff passwords.
type PasswordHasher interface {
	// Hash validates strength, then returns a salted hash.
	Hash(password string) (string, error)
	Check(password, hash string) bool

	// NeedsRehash reports whether hash was produced with settings other than
	// the current ones and should be replaced on the next successful login.
	NeedsRehash(hash string) bool

	ValidatePasswordStrength(password string) error
}
