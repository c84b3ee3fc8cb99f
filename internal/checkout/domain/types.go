package domain

import "github.com/shopspring/decimal"

// Receipt is the order summary snapshotted before the cart is
// cleared. ItemCount is summed quantities, matching the cart badge.
type Receipt struct {
	ItemCount int64
	Subtotal  decimal.Decimal
}
