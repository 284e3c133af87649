package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType separates the two kinds of JWT the API hands out. Each kind is
// signed with its own secret.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the JWT payload. Refresh tokens carry no roles; roles are read
// again from the user at refresh time.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Roles  []string  `json:"roles,omitempty"`
	Type   TokenType `json:"type"`
	jwt.RegisteredClaims
}

// Is reports whether the claims belong to a token of kind t.
func (c *Claims) Is(t TokenType) bool {
	return c != nil && c.Type == t
}

type TokenService interface {
	// GenerateTokens signs a fresh access and refresh pair.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken verifies signature and expiry against the secret of the
	// token's own type.
	ValidateToken(tokenString string) (*Claims, error)

	// HashToken returns the digest under which a refresh token is stored.
	HashToken(token string) string

	GetRefreshTokenDuration() time.Duration
}
