package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"cafe/config"
	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/domain/service"
	"cafe/internal/errors"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	identityProvider service.IdentityProvider
	superAdminEmails []string
	bootstrapAdmin   config.BootstrapAdminConfig
	maxSessions      int
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	IdentityProvider service.IdentityProvider
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		identityProvider: params.IdentityProvider,
		logger:           params.Logger,
	}

	if params.Config != nil && params.Config.Auth != nil {
		for _, email := range params.Config.Auth.SuperAdminEmails {
			srv.superAdminEmails = append(srv.superAdminEmails, normalizeEmail(email))
		}
		srv.bootstrapAdmin = params.Config.Auth.BootstrapAdmin
		srv.maxSessions = params.Config.Auth.MaxActiveSessions
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login verifies a local email/password credential and opens a session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting staff login", slog.String("email", email))

	authRecord, err := srv.loadLoginAuth(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	// bcrypt is CPU-bound, keep it out of the transaction.
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	srv.recordPasswordUse(ctx, authRecord, input.Password)

	user, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load login user")
	}

	output, err := srv.openSession(ctx, srv.refreshTokenRepo, user)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Staff logged in", slog.Any("userID", user.ID), slog.String("role", user.Role.String()))

	return output, nil
}

// recordPasswordUse stamps the credential and replaces a hash made with an
// outdated cost. Failures here never fail the login.
func (srv *authService) recordPasswordUse(ctx context.Context, authRecord *entity.Authentication, password string) {
	var rehash string
	if srv.hasher.NeedsRehash(authRecord.PasswordHash) {
		hash, err := srv.hasher.Hash(password)
		if err != nil {
			// Passwords set under an older policy may no longer pass it.
			srv.log(ctx).Warn("Password rehash skipped", slog.Any("userID", authRecord.UserID), slog.Any("error", err))
		}
		rehash = hash
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.AuthRepo().RecordUse(ctx, authRecord.ID, rehash)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to record credential use", slog.Any("userID", authRecord.UserID), slog.Any("error", err))

		return
	}
	if rehash != "" {
		srv.log(ctx).Info("Password hash upgraded", slog.Any("userID", authRecord.UserID))
	}
}

func (srv *authService) loadLoginAuth(ctx context.Context, email string) (*entity.Authentication, error) {
	var authRecord *entity.Authentication

	// Read from primary in a short transaction to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		authRecord, findErr = repoFactory.AuthRepo().FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find authentication")
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return authRecord, nil
}

// openSession issues a token pair and stores the refresh token.
func (srv *authService) openSession(ctx context.Context, refreshRepo repository.RefreshTokenRepository, user *entity.UserProfile) (*usecase.LoginOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().Strings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	now := time.Now()
	record := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: now.Add(srv.tokenService.GetRefreshTokenDuration()),
		CreatedAt: now,
	}
	if err := refreshRepo.CreateRefreshToken(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	// Oldest sessions give way to the new one once the limit is reached.
	if srv.maxSessions > 0 {
		pruned, err := refreshRepo.PruneRefreshTokensByUserID(ctx, user.ID, srv.maxSessions)
		if err != nil {
			return nil, errors.Wrap(err, "failed to prune sessions")
		}
		if pruned > 0 {
			srv.log(ctx).Info("Pruned old sessions", slog.Any("userID", user.ID), slog.Int64("count", pruned))
		}
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// LoginWithFirebase signs a staff member in with a Firebase ID token. The
// first sign-in creates the account.
func (srv *authService) LoginWithFirebase(ctx context.Context, input *usecase.FirebaseLoginInput) (*usecase.LoginOutput, error) {
	identity, err := srv.identityProvider.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Firebase sign-in rejected", slog.Any("error", err))

		return nil, err
	}

	var output *usecase.LoginOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := srv.findOrCreateFirebaseUser(ctx, repoFactory, identity)
		if err != nil {
			return err
		}

		output, err = srv.openSession(ctx, repoFactory.RefreshTokenRepo(), user)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute Firebase sign-in transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to sign in with Firebase")
	}

	return output, nil
}

func (srv *authService) findOrCreateFirebaseUser(ctx context.Context, repoFactory repository.RepositoryFactory, identity *service.ExternalIdentity) (*entity.UserProfile, error) {
	authRepo := repoFactory.AuthRepo()
	userRepo := repoFactory.UserRepo()

	authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeFirebase, identity.UID)
	if err == nil {
		if err := authRepo.RecordUse(ctx, authRecord.ID, ""); err != nil {
			return nil, errors.Wrap(err, "failed to record Firebase sign-in")
		}

		user, err := userRepo.FindByID(ctx, authRecord.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find linked user")
		}

		return user, nil
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	email := normalizeEmail(identity.Email)
	user, err := userRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		user = srv.newFirebaseUser(email, identity)
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrap(domainerrors.ErrUserCreationFailed, err.Error())
		}
		srv.log(ctx).Info("Staff account created from Firebase sign-in", slog.Any("userID", user.ID), slog.String("role", user.Role.String()))
	case err != nil:
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if err := authRepo.CreateAuthentication(ctx, &entity.Authentication{
		ID:             uuid.New(),
		UserID:         user.ID,
		Provider:       entity.ProviderTypeFirebase,
		ProviderUserID: identity.UID,
		CreatedAt:      time.Now(),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to link Firebase identity")
	}

	return user, nil
}

func (srv *authService) newFirebaseUser(email string, identity *service.ExternalIdentity) *entity.UserProfile {
	role := entity.RoleVolunteer
	if slices.Contains(srv.superAdminEmails, email) {
		role = entity.RoleAdmin
	}

	displayName := strings.TrimSpace(identity.DisplayName)
	if displayName == "" {
		displayName, _, _ = strings.Cut(email, "@")
	}

	now := time.Now()

	return &entity.UserProfile{
		ID:          uuid.New(),
		Email:       email,
		DisplayName: displayName,
		Role:        role,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// RefreshToken issues a new access token. The refresh token itself is not rotated.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil || !claims.Is(service.TokenTypeRefresh) {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if _, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash); err != nil {
		if errors.IsAny(err, repository.ErrRefreshTokenNotFound, repository.ErrRefreshTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	// Roles are re-read so a role change applies on the next refresh.
	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "user no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().Strings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout ends a session by deleting its refresh token.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if _, err := srv.tokenService.ValidateToken(input.RefreshToken); err != nil {
		// An expired token still names a session worth deleting.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)
	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

func (srv *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, userID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *authService) EnsureBootstrapAdmin(ctx context.Context) error {
	email := normalizeEmail(srv.bootstrapAdmin.Email)
	if email == "" {
		return nil
	}

	_, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to look up bootstrap admin")
	}

	displayName := srv.bootstrapAdmin.DisplayName
	if displayName == "" {
		displayName = "Administrator"
	}

	user, err := createStaffAccount(ctx, srv.txManager, srv.hasher, &usecase.CreateStaffInput{
		Email:       email,
		Password:    srv.bootstrapAdmin.Password,
		DisplayName: displayName,
		Role:        entity.RoleAdmin,
	})
	if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
		// Another instance won the race.
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to create bootstrap admin")
	}

	srv.log(ctx).Info("Bootstrap admin created", slog.Any("userID", user.ID), slog.String("email", email))

	return nil
}

// createStaffAccount stores a user with a local password credential.
func createStaffAccount(
	ctx context.Context,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	input *usecase.CreateStaffInput,
) (*entity.UserProfile, error) {
	if !input.Role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidRole, input.Role.String())
	}
	if err := hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.Wrap(domainerrors.ErrWeakPassword.WithDetails(err.Error()), "password does not meet security requirements")
	}

	passwordHash, err := hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := time.Now()
	user := &entity.UserProfile{
		ID:          uuid.New(),
		Email:       normalizeEmail(input.Email),
		DisplayName: strings.TrimSpace(input.DisplayName),
		Role:        input.Role,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, user.Email)
			}

			return errors.Wrap(err, "failed to create user")
		}

		return repoFactory.AuthRepo().CreateAuthentication(ctx, &entity.Authentication{
			ID:             uuid.New(),
			UserID:         user.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: user.Email,
			PasswordHash:   passwordHash,
			CreatedAt:      now,
		})
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
