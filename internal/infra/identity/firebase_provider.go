// Package identity verifies staff sign-in tokens issued by Firebase Authentication.
package identity

import (
	"context"

	"cafe/config"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/service"
	"cafe/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
)

type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type firebaseProvider struct {
	verifier tokenVerifier
}

// NewFirebaseProvider returns an IdentityProvider backed by the Firebase Admin SDK.
// When Firebase sign-in is disabled every verification fails with
// ErrIdentityProviderDisabled.
func NewFirebaseProvider(ctx context.Context, cfg *config.Config, app *firebase.App) (service.IdentityProvider, error) {
	if app == nil || cfg.Firebase == nil || !cfg.Firebase.EnableAuth {
		return disabledProvider{}, nil
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &firebaseProvider{verifier: client}, nil
}

func (p *firebaseProvider) VerifyIDToken(ctx context.Context, idToken string) (*service.ExternalIdentity, error) {
	token, err := p.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrIdentityTokenInvalid, err.Error())
	}

	identity := &service.ExternalIdentity{UID: token.UID}
	identity.Email, _ = token.Claims["email"].(string)
	identity.DisplayName, _ = token.Claims["name"].(string)
	identity.EmailVerified, _ = token.Claims["email_verified"].(bool)

	if identity.Email == "" {
		return nil, errors.Wrap(domainerrors.ErrIdentityTokenInvalid, "token carries no email")
	}

	return identity, nil
}

type disabledProvider struct{}

func (disabledProvider) VerifyIDToken(context.Context, string) (*service.ExternalIdentity, error) {
	return nil, domainerrors.ErrIdentityProviderDisabled
}
