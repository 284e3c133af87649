package usecase

import (
	"context"

	"cafe/internal/domain/entity"

	"github.com/google/uuid"
)

// RefillRequestInput asks admins to restock an item.
type RefillRequestInput struct {
	ItemID uuid.UUID
	Note   string
}

// VolunteerUsecase defines what a volunteer does at their station.
type VolunteerUsecase interface {
	// AssignedItems lists the items assigned to userID with live stock.
	AssignedItems(ctx context.Context, userID uuid.UUID) ([]*entity.MenuItem, error)

	// LogSale records a sale of an assigned item.
	LogSale(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*Receipt, error)

	// RequestRefill alerts admins that an assigned item needs restocking.
	RequestRefill(ctx context.Context, userID uuid.UUID, input *RefillRequestInput) error
}
