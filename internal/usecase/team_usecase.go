package usecase

import (
	"context"

	"cafe/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateStaffInput defines a new staff account created by an admin.
type CreateStaffInput struct {
	Email       string
	Password    string
	DisplayName string
	Role        entity.Role
}

// TeamMember is a staff account with its item assignments.
type TeamMember struct {
	*entity.UserProfile
	AssignedItemIDs []uuid.UUID `json:"assigned_item_ids"`
}

// TeamUsecase defines the team administration operations. actorID is the
// admin performing the change.
type TeamUsecase interface {
	ListTeam(ctx context.Context) ([]*TeamMember, error)
	CreateStaff(ctx context.Context, input *CreateStaffInput) (*entity.UserProfile, error)
	ChangeRole(ctx context.Context, actorID, userID uuid.UUID, role entity.Role) (*entity.UserProfile, error)
	RemoveStaff(ctx context.Context, actorID, userID uuid.UUID) error

	// AssignItems replaces the set of items a staff member sells.
	AssignItems(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) ([]uuid.UUID, error)
}
