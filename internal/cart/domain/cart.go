package domain

import "github.com/shopspring/decimal"

// Line is one cart entry. Name, Price and Image are snapshots taken
// when the line was created, so the cart survives a catalog reload.
// Quantity is always >= 1; a line that would drop below 1 is removed
// instead.
type Line struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Image     string
	Quantity  int64
}

// LineTotal is price times quantity, exact decimal arithmetic.
func (l Line) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.Quantity))
}

// Totals is the summary block of the cart. Values keep full decimal
// precision; callers format to two fractional digits at the
// presentation boundary only.
type Totals struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}
