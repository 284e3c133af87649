package usecase

import (
	"context"

	"cafe/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for a staff member to log in.
type LoginInput struct {
	Email    string
	Password string
}

// FirebaseLoginInput carries a Firebase Authentication ID token.
type FirebaseLoginInput struct {
	IDToken string
}

// RefreshTokenInput defines the data required to refresh an access token.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput defines the data required to log out.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.UserProfile
}

// RefreshTokenOutput returns a new access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// AuthUsecase defines staff sign-in and session operations.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	LoginWithFirebase(ctx context.Context, input *FirebaseLoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)

	// EnsureBootstrapAdmin creates the configured admin account when it does
	// not exist yet.
	EnsureBootstrapAdmin(ctx context.Context) error
}
