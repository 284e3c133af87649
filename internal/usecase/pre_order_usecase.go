package usecase

import (
	"context"

	"cafe/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitPreOrderInput is the public pre-order form.
type SubmitPreOrderInput struct {
	StudentName  string
	StudentClass string
	// Items maps raw item IDs to quantities, as decoded from the form.
	Items map[string]int
	// Screenshot is the payment proof. Nil when the form had no file.
	Screenshot *UploadedFile
}

// PreOrderReceipt is returned to the student after submission.
type PreOrderReceipt struct {
	Order      *entity.PreOrder `json:"order"`
	PickupCode string           `json:"pickup_code"`
}

// PreOrderUsecase defines the pre-order pipeline and its staff operations.
type PreOrderUsecase interface {
	SubmitPreOrder(ctx context.Context, input *SubmitPreOrderInput) (*PreOrderReceipt, error)
	GetPreOrder(ctx context.Context, id uuid.UUID) (*entity.PreOrder, error)
	ListPreOrders(ctx context.Context, status *entity.PreOrderStatus) ([]*entity.PreOrder, error)

	// AdvanceStatus moves an order to target, which must be its next status.
	AdvanceStatus(ctx context.Context, id uuid.UUID, target entity.PreOrderStatus) (*entity.PreOrder, error)

	// PickupQRCode renders the PNG pickup code of an order.
	PickupQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)

	// ResolvePickupCode returns the order a scanned pickup code refers to.
	ResolvePickupCode(ctx context.Context, payload string) (*entity.PreOrder, error)
}
