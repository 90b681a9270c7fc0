package pricing

import "github.com/shopspring/decimal"

// Storewide pricing rules. Shipping is waived once the merchandise subtotal
// reaches the free-shipping threshold; tax applies to merchandise only.
var (
	FreeShippingThreshold = decimal.NewFromFloat(50.00)
	FlatShippingRate      = decimal.NewFromFloat(5.99)
	TaxRate               = decimal.NewFromFloat(0.08)
)

// Totals is the full price breakdown for a cart or order. Values are exact
// decimals; callers round only when rendering or persisting.
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// LineTotal returns unit price times quantity.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Compute derives shipping, tax and grand total from a merchandise subtotal.
// A negative subtotal is treated as zero.
func Compute(subtotal decimal.Decimal) Totals {
	if subtotal.IsNegative() {
		subtotal = decimal.Zero
	}

	shipping := FlatShippingRate
	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) || subtotal.IsZero() {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(TaxRate)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// Rounded returns the breakdown rounded to cents for display and persistence.
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal: t.Subtotal.Round(2),
		Shipping: t.Shipping.Round(2),
		Tax:      t.Tax.Round(2),
		Total:    t.Total.Round(2),
	}
}
