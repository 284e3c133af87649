package impl

import (
	"context"
	"log/slog"

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

// teamService implements the TeamUsecase interface.
type teamService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	assignmentRepo repository.AssignmentRepository
	hasher         service.PasswordHasher
	logger         *slog.Logger
}

// TeamServiceParams holds dependencies for TeamService, injected by Fx.
type TeamServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	AssignmentRepo repository.AssignmentRepository
	Hasher         service.PasswordHasher
	Logger         *slog.Logger
}

// NewTeamService is the constructor for teamService.
func NewTeamService(params TeamServiceParams) usecase.TeamUsecase {
	return &teamService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		assignmentRepo: params.AssignmentRepo,
		hasher:         params.Hasher,
		logger:         params.Logger,
	}
}

func (srv *teamService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func mapUserError(err error, userID uuid.UUID) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, userID.String())
	}

	return errors.Wrap(err, "failed to access user")
}

func (srv *teamService) ListTeam(ctx context.Context) ([]*usecase.TeamMember, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list team")
	}

	members := make([]*usecase.TeamMember, 0, len(users))
	for _, user := range users {
		itemIDs, err := srv.assignmentRepo.FindItemIDsByUser(ctx, user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load assignments")
		}
		members = append(members, &usecase.TeamMember{UserProfile: user, AssignedItemIDs: itemIDs})
	}

	return members, nil
}

func (srv *teamService) CreateStaff(ctx context.Context, input *usecase.CreateStaffInput) (*entity.UserProfile, error) {
	user, err := createStaffAccount(ctx, srv.txManager, srv.hasher, input)
	if err != nil {
		srv.log(ctx).Warn("Failed to create staff account", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Staff account created", slog.Any("userID", user.ID), slog.String("role", user.Role.String()))

	return user, nil
}

// ChangeRole updates a role and ends the member's sessions so new tokens
// carry the new role.
func (srv *teamService) ChangeRole(ctx context.Context, actorID, userID uuid.UUID, role entity.Role) (*entity.UserProfile, error) {
	if !role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidRole, role.String())
	}
	if actorID == userID {
		return nil, errors.Wrap(domainerrors.ErrCannotModifySelf, "role change")
	}

	var updated *entity.UserProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := userRepo.UpdateRole(ctx, userID, role); err != nil {
			return mapUserError(err, userID)
		}
		if err := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		var err error
		updated, err = userRepo.FindByID(ctx, userID)
		if err != nil {
			return mapUserError(err, userID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Staff role changed", slog.Any("userID", userID), slog.String("role", role.String()))

	return updated, nil
}

func (srv *teamService) RemoveStaff(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == userID {
		return errors.Wrap(domainerrors.ErrCannotModifySelf, "removal")
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		return mapUserError(err, userID)
	}

	srv.log(ctx).Info("Staff account removed", slog.Any("userID", userID))

	return nil
}

func (srv *teamService) AssignItems(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) ([]uuid.UUID, error) {
	unique := make([]uuid.UUID, 0, len(itemIDs))
	seen := make(map[uuid.UUID]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().FindByID(ctx, userID); err != nil {
			return mapUserError(err, userID)
		}

		if err := repoFactory.AssignmentRepo().ReplaceForUser(ctx, userID, unique); err != nil {
			return mapMenuError(err, "failed to replace assignments")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Assignments replaced", slog.Any("userID", userID), slog.Int("items", len(unique)))

	return unique, nil
}
