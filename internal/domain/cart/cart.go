// Package cart aggregates requested quantities per menu item before checkout.
//
// A Cart never holds authoritative stock. Every limit it applies is checked
// against a catalog Snapshot supplied by the caller, which may already be
// stale; the sale transaction re-checks stock when it commits.
package cart

import (
	"cafe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrStockLimitReached is returned when a line would exceed the snapshot stock.
	ErrStockLimitReached = errors.New("stock limit reached")
	// ErrItemUnavailable is returned for items marked sold out.
	ErrItemUnavailable = errors.New("item unavailable")
	// ErrUnknownItem is returned for items missing from the snapshot.
	ErrUnknownItem = errors.New("item not in catalog")
)

// Snapshot is a read-only view of the catalog keyed by item ID.
type Snapshot map[uuid.UUID]*entity.MenuItem

// NewSnapshot indexes items by ID. Nil entries are skipped.
func NewSnapshot(items []*entity.MenuItem) Snapshot {
	snapshot := make(Snapshot, len(items))
	for _, item := range items {
		if item != nil {
			snapshot[item.ID] = item
		}
	}

	return snapshot
}

// Line is one item and its requested quantity.
type Line struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

// Cart maps item IDs to quantities, remembering insertion order.
// It is not safe for concurrent use.
type Cart struct {
	order []uuid.UUID
	qty   map[uuid.UUID]int
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{qty: make(map[uuid.UUID]int)}
}

// FromLines rebuilds a cart from lines, summing duplicates and dropping
// non-positive quantities.
func FromLines(lines []Line) *Cart {
	c := New()
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		c.set(line.ItemID, c.qty[line.ItemID]+line.Quantity)
	}

	return c
}

// AddLine increments the quantity of itemID by one. The cart is unchanged
// when the item is unknown, sold out, or already at the snapshot stock.
func (c *Cart) AddLine(itemID uuid.UUID, snapshot Snapshot) error {
	item, ok := snapshot[itemID]
	if !ok {
		return errors.Wrapf(ErrUnknownItem, "item %s", itemID)
	}
	if item.Availability == entity.AvailabilitySoldOut {
		return errors.Wrapf(ErrItemUnavailable, "item %s", itemID)
	}

	next := c.qty[itemID] + 1
	if next > item.Stock {
		return errors.Wrapf(ErrStockLimitReached, "item %s has %d in stock", itemID, item.Stock)
	}

	c.set(itemID, next)

	return nil
}

// RemoveLine decrements the quantity of itemID by one, deleting the line at zero.
// Removing an absent item is a no-op.
func (c *Cart) RemoveLine(itemID uuid.UUID) {
	current, ok := c.qty[itemID]
	if !ok {
		return
	}

	c.set(itemID, current-1)
}

// SetQuantity sets the quantity of itemID clamped to [0, stock] and returns
// the applied value. Zero removes the line. Unknown items are clamped to zero.
func (c *Cart) SetQuantity(itemID uuid.UUID, n int, snapshot Snapshot) int {
	limit := 0
	if item, ok := snapshot[itemID]; ok && item.Availability != entity.AvailabilitySoldOut {
		limit = max(item.Stock, 0)
	}

	applied := min(max(n, 0), limit)
	c.set(itemID, applied)

	return applied
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.order = nil
	clear(c.qty)
}

// Quantity returns the quantity of itemID, zero when absent.
func (c *Cart) Quantity(itemID uuid.UUID) int {
	return c.qty[itemID]
}

// Len returns the number of distinct items.
func (c *Cart) Len() int {
	return len(c.order)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.order) == 0
}

// Lines returns the lines in the order items were first added.
func (c *Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		lines = append(lines, Line{ItemID: id, Quantity: c.qty[id]})
	}

	return lines
}

// ItemIDs returns the distinct item IDs in insertion order.
func (c *Cart) ItemIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(c.order))
	copy(ids, c.order)

	return ids
}

// Total sums quantity times price over lines resolved against snapshot.
// Lines whose item is missing from the snapshot contribute nothing and are
// returned in missing.
func (c *Cart) Total(snapshot Snapshot) (total int64, missing []uuid.UUID) {
	for _, id := range c.order {
		item, ok := snapshot[id]
		if !ok {
			missing = append(missing, id)

			continue
		}
		total += item.Price * int64(c.qty[id])
	}

	return total, missing
}

// Validate checks every line against snapshot. It returns the first failure
// in insertion order.
func (c *Cart) Validate(snapshot Snapshot) error {
	for _, id := range c.order {
		item, ok := snapshot[id]
		if !ok {
			return errors.Wrapf(ErrUnknownItem, "item %s", id)
		}
		if item.Availability == entity.AvailabilitySoldOut {
			return errors.Wrapf(ErrItemUnavailable, "item %s", id)
		}
		if c.qty[id] > item.Stock {
			return errors.Wrapf(ErrStockLimitReached, "item %s has %d in stock", id, item.Stock)
		}
	}

	return nil
}

// Clone returns an independent copy.
func (c *Cart) Clone() *Cart {
	clone := New()
	for _, id := range c.order {
		clone.set(id, c.qty[id])
	}

	return clone
}

func (c *Cart) set(itemID uuid.UUID, n int) {
	_, exists := c.qty[itemID]

	if n <= 0 {
		if exists {
			delete(c.qty, itemID)
			c.order = removeID(c.order, itemID)
		}

		return
	}

	if !exists {
		c.order = append(c.order, itemID)
	}
	c.qty[itemID] = n
}

func removeID(ids []uuid.UUID, target uuid.UUID) []uuid.UUID {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}
