package auth

import (
	"strings"
	"testing"

	"cafe/config"
	domainerrors "cafe/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPass123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_NeedsRehash(t *testing.T) {
	old := NewBcryptHasherWithCost(bcrypt.MinCost)
	current := NewBcryptHasherWithCost(bcrypt.MinCost + 1)

	hash, err := old.Hash("StrongPass123!")
	require.NoError(t, err)

	assert.False(t, old.NeedsRehash(hash))
	assert.True(t, current.NeedsRehash(hash))
	assert.False(t, current.NeedsRehash("not-a-bcrypt-hash"))
}

func TestBcryptHasher_HashRejectsWeakPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash("short")
	assert.True(t, errors.Is(err, domainerrors.ErrWeakPassword))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	for _, password := range []string{"StrongPass123!", "MySecure@Pass1", "Complex#Secret9", "Pässphräse123!"} {
		assert.NoError(t, hasher.ValidatePasswordStrength(password), password)
	}

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"", "must be at least 8 characters long"},
		{"123", "must be at least 8 characters long"},
		{"PASSWORD123!", "must contain at least one lowercase letter"},
		{"latte123!", "must contain at least one uppercase letter"},
		{"LatteArt!", "must contain at least one number"},
		{"LatteArt123", "must contain at least one special character"},
		{"Password123!", "contains forbidden words"},
		{"MyAdmin123!", "contains forbidden words"},
		{"Latte1!" + strings.Repeat("x", 80), "must be at most 72 bytes long"},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedErr)
			assert.True(t, errors.Is(err, domainerrors.ErrWeakPassword))
		})
	}
}

func TestBcryptHasher_FromConfig(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 5},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength: 6,
		},
	}
	hasher := NewBcryptHasher(cfg)

	// Only the length rule is enabled.
	assert.NoError(t, hasher.ValidatePasswordStrength("mocha1"))

	hash, err := hasher.Hash("flatwhite")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestBcryptHasher_PasswordStrengthHelpers(t *testing.T) {
	hasher := &bcryptHasher{}

	assert.True(t, hasher.hasUppercase("Latte"))
	assert.False(t, hasher.hasUppercase("latte"))

	assert.True(t, hasher.hasLowercase("Latte"))
	assert.False(t, hasher.hasLowercase("LATTE"))

	assert.True(t, hasher.hasNumbers("Latte123"))
	assert.False(t, hasher.hasNumbers("Latte"))

	assert.True(t, hasher.hasSpecialChars("Latte!"))
	assert.False(t, hasher.hasSpecialChars("Latte"))

	words := []string{"password", "admin"}
	assert.True(t, hasher.containsForbiddenWords("MyPassword123", words))
	assert.True(t, hasher.containsForbiddenWords("AdminUser", words))
	assert.False(t, hasher.containsForbiddenWords("SecurePass123", words))
}
