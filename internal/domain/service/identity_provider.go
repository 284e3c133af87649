package service

import (
	"context"
)

// ExternalIdentity is the verified subject of a third-party ID token.
type ExternalIdentity struct {
	UID           string
	Email         string
	DisplayName   string
	EmailVerified bool
}

// IdentityProvider verifies ID tokens minted by an external sign-in service.
type IdentityProvider interface {
	VerifyIDToken(ctx context.Context, idToken string) (*ExternalIdentity, error)
}
