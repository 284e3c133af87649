package impl

import (
	"context"
	"testing"
	"time"

	"cafe/config"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/domain/service"
	mockRepo "cafe/internal/mocks/repository"
	mockSvc "cafe/internal/mocks/service"
	"cafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	txUserRepo       *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	txRefreshRepo    *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	identityProvider *mockSvc.MockIdentityProvider
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		txUserRepo:       mockRepo.NewMockUserRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		txRefreshRepo:    mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		identityProvider: mockSvc.NewMockIdentityProvider(t),
	}

	cfg := newTestConfig()
	cfg.Auth.SuperAdminEmails = []string{" Owner@Cafe.test "}
	cfg.Auth.BootstrapAdmin = config.BootstrapAdminConfig{Email: "admin@cafe.test", Password: "Sup3r-secret"}

	fx.service = NewAuthService(AuthServiceParams{
		TxManager:        fx.txManager,
		UserRepo:         fx.userRepo,
		RefreshTokenRepo: fx.refreshTokenRepo,
		Hasher:           fx.hasher,
		TokenService:     fx.tokenService,
		IdentityProvider: fx.identityProvider,
		Config:           cfg,
		Logger:           newDiscardLogger(),
	})

	fx.factory.EXPECT().AuthRepo().Return(fx.authRepo).Maybe()
	fx.factory.EXPECT().UserRepo().Return(fx.txUserRepo).Maybe()
	fx.factory.EXPECT().RefreshTokenRepo().Return(fx.txRefreshRepo).Maybe()

	return fx
}

func (fx authServiceFixtures) expectTokens(user *entity.UserProfile, roles []string) {
	fx.tokenService.EXPECT().GenerateTokens(user.ID, roles).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.UserProfile{ID: uuid.New(), Email: "admin@cafe.test", Role: entity.RoleAdmin}

	expectTransaction(fx.txManager, fx.factory)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "admin@cafe.test").
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hash"}, nil)
	fx.hasher.EXPECT().Check("pw", "hash").Return(true)
	fx.hasher.EXPECT().NeedsRehash("hash").Return(false)
	fx.authRepo.EXPECT().RecordUse(ctx, uuid.Nil, "").Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.expectTokens(user, []string{"admin", "volunteer"})
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == user.ID && token.TokenHash == "refresh-hash"
		})).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "  Admin@Cafe.test", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_PrunesOldSessions(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.UserProfile{ID: uuid.New(), Email: "vol@cafe.test", Role: entity.RoleVolunteer}

	cfg := newTestConfig()
	cfg.Auth.MaxActiveSessions = 2
	fx.service = NewAuthService(AuthServiceParams{
		TxManager:        fx.txManager,
		UserRepo:         fx.userRepo,
		RefreshTokenRepo: fx.refreshTokenRepo,
		Hasher:           fx.hasher,
		TokenService:     fx.tokenService,
		IdentityProvider: fx.identityProvider,
		Config:           cfg,
		Logger:           newDiscardLogger(),
	})

	expectTransaction(fx.txManager, fx.factory)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "vol@cafe.test").
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hash"}, nil)
	fx.hasher.EXPECT().Check("pw", "hash").Return(true)
	fx.hasher.EXPECT().NeedsRehash("hash").Return(false)
	fx.authRepo.EXPECT().RecordUse(ctx, uuid.Nil, "").Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.expectTokens(user, []string{"volunteer"})
	fx.refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.Anything).Return(nil)
	fx.refreshTokenRepo.EXPECT().PruneRefreshTokensByUserID(ctx, user.ID, 2).Return(int64(1), nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "vol@cafe.test", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "refresh", output.RefreshToken)
}

func TestAuthService_Login_UpgradesStaleHash(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.UserProfile{ID: uuid.New(), Email: "vol@cafe.test", Role: entity.RoleVolunteer}
	authID := uuid.New()

	expectTransaction(fx.txManager, fx.factory)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "vol@cafe.test").
		Return(&entity.Authentication{ID: authID, UserID: user.ID, PasswordHash: "cost-4"}, nil)
	fx.hasher.EXPECT().Check("Latte-Art-9", "cost-4").Return(true)
	fx.hasher.EXPECT().NeedsRehash("cost-4").Return(true)
	fx.hasher.EXPECT().Hash("Latte-Art-9").Return("cost-12", nil)
	fx.authRepo.EXPECT().RecordUse(ctx, authID, "cost-12").Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.expectTokens(user, []string{"volunteer"})
	fx.refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.Anything).Return(nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "vol@cafe.test", Password: "Latte-Art-9"})

	require.NoError(t, err)
}

func TestAuthService_Login_RecordFailureDoesNotBlock(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.UserProfile{ID: uuid.New(), Email: "vol@cafe.test", Role: entity.RoleVolunteer}

	expectTransaction(fx.txManager, fx.factory)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "vol@cafe.test").
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hash"}, nil)
	fx.hasher.EXPECT().Check("pw", "hash").Return(true)
	fx.hasher.EXPECT().NeedsRehash("hash").Return(true)
	fx.hasher.EXPECT().Hash("pw").Return("", domainerrors.ErrWeakPassword)
	fx.authRepo.EXPECT().RecordUse(ctx, uuid.Nil, "").Return(errors.New("deadlock detected"))
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.expectTokens(user, []string{"volunteer"})
	fx.refreshTokenRepo.EXPECT().CreateRefreshToken(ctx, mock.Anything).Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "vol@cafe.test", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		expectTransaction(fx.txManager, fx.factory)
		fx.authRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "nobody@cafe.test").
			Return(nil, repository.ErrAuthNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@cafe.test", Password: "pw"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		expectTransaction(fx.txManager, fx.factory)
		fx.authRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "admin@cafe.test").
			Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hash"}, nil)
		fx.hasher.EXPECT().Check("wrong", "hash").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "admin@cafe.test", Password: "wrong"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_LoginWithFirebase_CreatesSuperAdmin(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	identity := &service.ExternalIdentity{UID: "fb-1", Email: "owner@cafe.test"}

	fx.identityProvider.EXPECT().VerifyIDToken(ctx, "id-token").Return(identity, nil)
	expectTransaction(fx.txManager, fx.factory)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeFirebase, "fb-1").
		Return(nil, repository.ErrAuthNotFound)
	fx.txUserRepo.EXPECT().FindByEmail(ctx, "owner@cafe.test").Return(nil, repository.ErrUserNotFound)

	var created *entity.UserProfile
	fx.txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.UserProfile")).
		Run(func(_ context.Context, user *entity.UserProfile) { created = user }).
		Return(nil)
	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.Provider == entity.ProviderTypeFirebase && auth.ProviderUserID == "fb-1"
		})).
		Return(nil)
	fx.tokenService.EXPECT().GenerateTokens(mock.Anything, []string{"admin", "volunteer"}).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.txRefreshRepo.EXPECT().CreateRefreshToken(ctx, mock.Anything).Return(nil)

	output, err := fx.service.LoginWithFirebase(ctx, &usecase.FirebaseLoginInput{IDToken: "id-token"})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, entity.RoleAdmin, created.Role)
	assert.Equal(t, "owner", created.DisplayName)
	assert.Equal(t, created, output.User)
}

func TestAuthService_LoginWithFirebase_LinkedAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := &entity.UserProfile{ID: uuid.New(), Role: entity.RoleVolunteer}

	fx.identityProvider.EXPECT().VerifyIDToken(ctx, "id-token").Return(&service.ExternalIdentity{UID: "fb-2"}, nil)
	expectTransaction(fx.txManager, fx.factory)
	authID := uuid.New()
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeFirebase, "fb-2").
		Return(&entity.Authentication{ID: authID, UserID: user.ID}, nil)
	fx.authRepo.EXPECT().RecordUse(ctx, authID, "").Return(nil)
	fx.txUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.expectTokens(user, []string{"volunteer"})
	fx.txRefreshRepo.EXPECT().CreateRefreshToken(ctx, mock.Anything).Return(nil)

	output, err := fx.service.LoginWithFirebase(ctx, &usecase.FirebaseLoginInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
}

func TestAuthService_LoginWithFirebase_RejectedToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.identityProvider.EXPECT().
		VerifyIDToken(ctx, "bad").
		Return(nil, errors.Wrap(domainerrors.ErrIdentityTokenInvalid, "expired"))

	_, err := fx.service.LoginWithFirebase(ctx, &usecase.FirebaseLoginInput{IDToken: "bad"})

	assert.ErrorIs(t, err, domainerrors.ErrIdentityTokenInvalid)
}

func TestAuthService_RefreshToken(t *testing.T) {
	userID := uuid.New()

	t.Run("re-reads role", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().
			ValidateToken("refresh").
			Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh, Roles: []string{"admin"}}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(&entity.RefreshToken{}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.UserProfile{ID: userID, Role: entity.RoleVolunteer}, nil)
		fx.tokenService.EXPECT().GenerateTokens(userID, []string{"volunteer"}).Return("new-access", "unused", nil)

		output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", output.AccessToken)
	})

	t.Run("access token rejected", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokenService.EXPECT().
			ValidateToken("access").
			Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)

		_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "access"})
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("revoked session", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().
			ValidateToken("refresh").
			Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestAuthService_Logout_ExpiredTokenStillDeletes(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateToken("old").Return(nil, errors.New("token expired"))
	fx.tokenService.EXPECT().HashToken("old").Return("old-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "old-hash").Return(nil)

	require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "old"}))
}

func TestAuthService_EnsureBootstrapAdmin(t *testing.T) {
	t.Run("creates missing admin", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "admin@cafe.test").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().ValidatePasswordStrength("Sup3r-secret").Return(nil)
		fx.hasher.EXPECT().Hash("Sup3r-secret").Return("hash", nil)
		expectTransaction(fx.txManager, fx.factory)
		fx.txUserRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(user *entity.UserProfile) bool {
				return user.Role == entity.RoleAdmin && user.DisplayName == "Administrator"
			})).
			Return(nil)
		fx.authRepo.EXPECT().
			CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
				return auth.Provider == entity.ProviderTypeEmail && auth.PasswordHash == "hash"
			})).
			Return(nil)

		require.NoError(t, fx.service.EnsureBootstrapAdmin(ctx))
	})

	t.Run("existing admin untouched", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "admin@cafe.test").Return(&entity.UserProfile{}, nil)

		require.NoError(t, fx.service.EnsureBootstrapAdmin(ctx))
	})

	t.Run("lost creation race", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "admin@cafe.test").Return(nil, repository.ErrUserNotFound)
		fx.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
		fx.hasher.EXPECT().Hash(mock.Anything).Return("hash", nil)
		expectTransaction(fx.txManager, fx.factory)
		fx.txUserRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateUser)

		require.NoError(t, fx.service.EnsureBootstrapAdmin(ctx))
	})
}

func TestCreateStaffAccount_WeakPassword(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	hasher.EXPECT().ValidatePasswordStrength("123").Return(errors.New("password must be at least 8 characters"))

	_, err := createStaffAccount(context.Background(), txManager, hasher, &usecase.CreateStaffInput{
		Email:    "v@cafe.test",
		Password: "123",
		Role:     entity.RoleVolunteer,
	})

	require.ErrorIs(t, err, domainerrors.ErrWeakPassword)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "at least 8")
}
