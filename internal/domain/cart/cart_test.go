package cart

import (
	"testing"

	"cafe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(stock int, price int64) *entity.MenuItem {
	return &entity.MenuItem{
		ID:           uuid.New(),
		Name:         "Item",
		Price:        price,
		Stock:        stock,
		Availability: entity.AvailabilityForStock(stock),
	}
}

func TestCart_AddLine_UpToStock(t *testing.T) {
	item := newItem(3, 250)
	snapshot := NewSnapshot([]*entity.MenuItem{item})
	c := New()

	for range 3 {
		require.NoError(t, c.AddLine(item.ID, snapshot))
	}
	assert.Equal(t, 3, c.Quantity(item.ID))

	err := c.AddLine(item.ID, snapshot)
	assert.True(t, errors.Is(err, ErrStockLimitReached))
	assert.Equal(t, 3, c.Quantity(item.ID), "rejected add must not change quantity")

	total, missing := c.Total(snapshot)
	assert.Equal(t, int64(750), total)
	assert.Empty(t, missing)
}

func TestCart_AddLine_Rejections(t *testing.T) {
	soldOut := newItem(0, 100)
	zeroStockListed := newItem(0, 100)
	zeroStockListed.Availability = entity.AvailabilityInStock
	snapshot := NewSnapshot([]*entity.MenuItem{soldOut, zeroStockListed})

	tests := []struct {
		name   string
		itemID uuid.UUID
		want   error
	}{
		{name: "sold out", itemID: soldOut.ID, want: ErrItemUnavailable},
		{name: "zero stock", itemID: zeroStockListed.ID, want: ErrStockLimitReached},
		{name: "unknown", itemID: uuid.New(), want: ErrUnknownItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			err := c.AddLine(tt.itemID, snapshot)
			assert.True(t, errors.Is(err, tt.want))
			assert.True(t, c.IsEmpty())
		})
	}
}

func TestCart_RemoveLine(t *testing.T) {
	item := newItem(5, 100)
	snapshot := NewSnapshot([]*entity.MenuItem{item})
	c := New()
	require.NoError(t, c.AddLine(item.ID, snapshot))
	require.NoError(t, c.AddLine(item.ID, snapshot))

	c.RemoveLine(item.ID)
	assert.Equal(t, 1, c.Quantity(item.ID))

	c.RemoveLine(item.ID)
	assert.Equal(t, 0, c.Quantity(item.ID))
	assert.True(t, c.IsEmpty())

	c.RemoveLine(item.ID)
	assert.True(t, c.IsEmpty())
}

func TestCart_SetQuantity_Clamps(t *testing.T) {
	item := newItem(4, 100)
	snapshot := NewSnapshot([]*entity.MenuItem{item})

	tests := []struct {
		name string
		in   int
		want int
	}{
		{name: "within range", in: 2, want: 2},
		{name: "above stock", in: 10, want: 4},
		{name: "negative", in: -1, want: 0},
		{name: "zero", in: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			applied := c.SetQuantity(item.ID, tt.in, snapshot)
			assert.Equal(t, tt.want, applied)
			assert.Equal(t, tt.want, c.Quantity(item.ID))
			assert.Equal(t, tt.want == 0, c.IsEmpty())
		})
	}
}

func TestCart_LinesKeepInsertionOrder(t *testing.T) {
	a, b, d := newItem(5, 100), newItem(5, 200), newItem(5, 300)
	snapshot := NewSnapshot([]*entity.MenuItem{a, b, d})
	c := New()

	require.NoError(t, c.AddLine(b.ID, snapshot))
	require.NoError(t, c.AddLine(a.ID, snapshot))
	require.NoError(t, c.AddLine(d.ID, snapshot))
	require.NoError(t, c.AddLine(b.ID, snapshot))
	c.SetQuantity(a.ID, 0, snapshot)

	assert.Equal(t, []Line{
		{ItemID: b.ID, Quantity: 2},
		{ItemID: d.ID, Quantity: 1},
	}, c.Lines())
}

func TestCart_TotalUsesLatestSnapshot(t *testing.T) {
	item := newItem(5, 100)
	gone := newItem(5, 900)
	c := New()
	require.NoError(t, c.AddLine(item.ID, NewSnapshot([]*entity.MenuItem{item, gone})))
	require.NoError(t, c.AddLine(gone.ID, NewSnapshot([]*entity.MenuItem{item, gone})))

	repriced := *item
	repriced.Price = 150
	total, missing := c.Total(NewSnapshot([]*entity.MenuItem{&repriced}))

	assert.Equal(t, int64(150), total)
	assert.Equal(t, []uuid.UUID{gone.ID}, missing)
}

func TestCart_ValidateAgainstStaleStock(t *testing.T) {
	item := newItem(3, 100)
	c := New()
	c.SetQuantity(item.ID, 3, NewSnapshot([]*entity.MenuItem{item}))

	depleted := *item
	depleted.Stock = 1
	err := c.Validate(NewSnapshot([]*entity.MenuItem{&depleted}))
	assert.True(t, errors.Is(err, ErrStockLimitReached))

	assert.NoError(t, c.Validate(NewSnapshot([]*entity.MenuItem{item})))
}

func TestFromLines_SumsDuplicates(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	c := FromLines([]Line{
		{ItemID: a, Quantity: 1},
		{ItemID: b, Quantity: 0},
		{ItemID: a, Quantity: 2},
	})

	assert.Equal(t, []Line{{ItemID: a, Quantity: 3}}, c.Lines())
}

func TestCart_CloneIsIndependent(t *testing.T) {
	item := newItem(5, 100)
	snapshot := NewSnapshot([]*entity.MenuItem{item})
	c := New()
	require.NoError(t, c.AddLine(item.ID, snapshot))

	clone := c.Clone()
	clone.Clear()

	assert.Equal(t, 1, c.Quantity(item.ID))
	assert.True(t, clone.IsEmpty())
}
