// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cafe/internal/domain/entity"

	"github.com/google/uuid"
)

// MenuScope selects which part of the catalog a listing returns.
type MenuScope string

const (
	// MenuScopeAll lists every item.
	MenuScopeAll MenuScope = "all"
	// MenuScopeDaily lists the items sold at the counter.
	MenuScopeDaily MenuScope = "daily"
	// MenuScopePreOrder lists the pre-order-only items.
	MenuScopePreOrder MenuScope = "pre-order"
)

// CreateMenuItemInput defines the data required to add an item to the catalog.
type CreateMenuItemInput struct {
	Name           string
	Description    string
	Price          int64
	Stock          int
	IsPreOrderOnly bool
}

// UpdateMenuItemInput replaces the editable fields of an item. Setting
// Availability to "Sold Out" while stock remains is a manual override kept
// until the next stock change.
type UpdateMenuItemInput struct {
	ID             uuid.UUID
	Name           string
	Description    string
	Price          int64
	Availability   entity.Availability
	IsPreOrderOnly bool
}

// UploadedFile is a file received from a multipart form.
type UploadedFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

// MenuUsecase defines the catalog operations.
type MenuUsecase interface {
	ListMenu(ctx context.Context, scope MenuScope, inStockOnly bool) ([]*entity.MenuItem, error)
	GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	CreateMenuItem(ctx context.Context, input *CreateMenuItemInput) (*entity.MenuItem, error)
	UpdateMenuItem(ctx context.Context, input *UpdateMenuItemInput) (*entity.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id uuid.UUID) error

	// SetStock sets an absolute stock level, as entered on the stock page.
	SetStock(ctx context.Context, id uuid.UUID, stock int) (*entity.MenuItem, error)

	// UploadImage stores a new item picture and deletes the previous one.
	UploadImage(ctx context.Context, id uuid.UUID, file *UploadedFile) (*entity.MenuItem, error)

	// WatchMenu yields the current listing of scope, then a fresh listing after
	// every committed catalog change. The channel is closed when ctx ends.
	WatchMenu(ctx context.Context, scope MenuScope) (<-chan []*entity.MenuItem, error)
}
