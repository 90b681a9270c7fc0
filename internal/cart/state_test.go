package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCartAddMergesExistingLine(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	c := NewCart("sess-1")

	c.Add(Line{ProductID: productID, Name: "Monstera", Price: dec("20.00"), Quantity: 2})
	c.Add(Line{ProductID: productID, Name: "Monstera", Price: dec("20.00"), Quantity: 1})

	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, 3, c.ItemCount())
}

func TestCartAddIgnoresNonPositiveQuantity(t *testing.T) {
	t.Parallel()

	c := NewCart("sess-1")
	c.Add(Line{ProductID: uuid.New(), Quantity: 0})
	c.Add(Line{ProductID: uuid.New(), Quantity: -2})

	assert.True(t, c.IsEmpty())
}

func TestCartSetQuantityRemovesAtZeroOrBelow(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	c := NewCart("sess-1")
	c.Add(Line{ProductID: productID, Price: dec("9.99"), Quantity: 4})

	require.True(t, c.SetQuantity(productID, 2))
	assert.Equal(t, 2, c.Items[0].Quantity)

	require.True(t, c.SetQuantity(productID, 0))
	assert.True(t, c.IsEmpty())
}

func TestCartSetQuantityUnknownProduct(t *testing.T) {
	t.Parallel()

	c := NewCart("sess-1")
	assert.False(t, c.SetQuantity(uuid.New(), 3))
}

func TestCartRemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	c := NewCart("sess-1")
	c.Add(Line{ProductID: productID, Price: dec("5.00"), Quantity: 1})

	c.Remove(productID)
	c.Remove(productID)
	c.Remove(uuid.New())

	assert.True(t, c.IsEmpty())
}

func TestCartTotalsRecomputedFromLines(t *testing.T) {
	t.Parallel()

	c := NewCart("sess-1")
	c.Add(Line{ProductID: uuid.New(), Price: dec("20.00"), Quantity: 2})
	c.Add(Line{ProductID: uuid.New(), Price: dec("15.00"), Quantity: 1})

	totals := c.Totals().Rounded()
	assert.True(t, totals.Subtotal.Equal(dec("55.00")))
	assert.True(t, totals.Shipping.IsZero())
	assert.True(t, totals.Tax.Equal(dec("4.40")))
	assert.True(t, totals.Total.Equal(dec("59.40")))

	// dropping a line changes the recomputed breakdown
	c.Remove(c.Items[0].ProductID)
	totals = c.Totals().Rounded()
	assert.True(t, totals.Subtotal.Equal(dec("15.00")))
	assert.True(t, totals.Shipping.Equal(dec("5.99")))
}

func TestEmptyCartTotalsAreZero(t *testing.T) {
	t.Parallel()

	totals := NewCart("sess-1").Totals()
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Shipping.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.IsZero())
}
