package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paradise-nursery/storefront-backend/internal/pricing"
)

// Line is a single cart entry. Product details are denormalized at add time
// so the cart can render without re-reading the catalog.
type Line struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url"`
	Quantity  int             `json:"quantity"`
}

// Cart holds at most one line per product id, in insertion order.
type Cart struct {
	SessionID string `json:"session_id"`
	Items     []Line `json:"items"`
}

// NewCart returns an empty cart bound to the session.
func NewCart(sessionID string) *Cart {
	return &Cart{SessionID: sessionID, Items: []Line{}}
}

func (c *Cart) indexOf(productID uuid.UUID) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Add merges the line into the cart. An existing line for the same product
// has its quantity incremented and its snapshot refreshed; otherwise the
// line is appended. Non-positive quantities are ignored.
func (c *Cart) Add(line Line) {
	if line.Quantity <= 0 {
		return
	}
	if i := c.indexOf(line.ProductID); i >= 0 {
		line.Quantity += c.Items[i].Quantity
		c.Items[i] = line
		return
	}
	c.Items = append(c.Items, line)
}

// SetQuantity updates the line's quantity. A quantity of zero or less removes
// the line. Returns false when no line exists for the product.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	if quantity <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return true
	}
	c.Items[i].Quantity = quantity
	return true
}

// Remove drops the line for the product. Removing an absent product is a no-op.
func (c *Cart) Remove(productID uuid.UUID) {
	if i := c.indexOf(productID); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = c.Items[:0]
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount is the total unit count across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Subtotal sums line totals from scratch; nothing is cached between calls.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.Items {
		subtotal = subtotal.Add(pricing.LineTotal(item.Price, item.Quantity))
	}
	return subtotal
}

// Totals derives the full price breakdown for the current contents.
func (c *Cart) Totals() pricing.Totals {
	return pricing.Compute(c.Subtotal())
}
