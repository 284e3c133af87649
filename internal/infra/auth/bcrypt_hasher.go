// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"cafe/config"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/service"
	"cafe/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// forbiddenPasswordWords are rejected anywhere in a password, case-insensitively.
var forbiddenPasswordWords = []string{"password", "admin", "cafe", "qwerty", "123456"}

// passwordPolicy is the strength rule set applied to new passwords.
type passwordPolicy struct {
	minLength        int
	maxLength        int
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
}

var defaultPasswordPolicy = passwordPolicy{
	minLength:        8,
	maxLength:        72, // bcrypt ignores input beyond 72 bytes
	requireUppercase: true,
	requireLowercase: true,
	requireNumbers:   true,
	requireSpecial:   true,
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy passwordPolicy
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{cost: bcrypt.DefaultCost, policy: defaultPasswordPolicy}
	if cfg == nil {
		return hasher
	}

	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		hasher.cost = cfg.Auth.BcryptCost
	}

	if ps := cfg.PasswordStrength; ps != nil {
		hasher.policy = passwordPolicy{
			minLength:        max(ps.MinLength, 1),
			maxLength:        ps.MaxLength,
			requireUppercase: ps.RequireUppercase,
			requireLowercase: ps.RequireLowercase,
			requireNumbers:   ps.RequireNumbers,
			requireSpecial:   ps.RequireSpecial,
		}
		if hasher.policy.maxLength <= 0 {
			hasher.policy.maxLength = defaultPasswordPolicy.maxLength
		}
	}

	return hasher
}

// NewBcryptHasherWithCost creates a hasher with the default policy and a fixed cost.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost, policy: defaultPasswordPolicy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// The password must pass ValidatePasswordStrength first.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NeedsRehash is true for well-formed hashes made with a different cost.
func (h *bcryptHasher) NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))

	return err == nil && cost != h.cost
}

// ValidatePasswordStrength reports the first rule the password breaks.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	p := h.policy
	length := len([]rune(password))

	switch {
	case length < p.minLength:
		return errors.Wrapf(domainerrors.ErrWeakPassword, "password must be at least %d characters long", p.minLength)
	case p.maxLength > 0 && len(password) > p.maxLength:
		return errors.Wrapf(domainerrors.ErrWeakPassword, "password must be at most %d bytes long", p.maxLength)
	case p.requireLowercase && !h.hasLowercase(password):
		return errors.Wrap(domainerrors.ErrWeakPassword, "password must contain at least one lowercase letter")
	case p.requireUppercase && !h.hasUppercase(password):
		return errors.Wrap(domainerrors.ErrWeakPassword, "password must contain at least one uppercase letter")
	case p.requireNumbers && !h.hasNumbers(password):
		return errors.Wrap(domainerrors.ErrWeakPassword, "password must contain at least one number")
	case p.requireSpecial && !h.hasSpecialChars(password):
		return errors.Wrap(domainerrors.ErrWeakPassword, "password must contain at least one special character")
	case h.containsForbiddenWords(password, forbiddenPasswordWords):
		return errors.Wrap(domainerrors.ErrWeakPassword, "password contains forbidden words")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}
