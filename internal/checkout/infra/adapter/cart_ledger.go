package adapter

import (
	"github.com/shopspring/decimal"

	cartapp "github.com/leng404/gymshop/internal/cart/app"
)

// LedgerCart adapts the cart ledger to the checkout's Cart port.
type LedgerCart struct {
	ledger *cartapp.Ledger
}

func NewLedgerCart(ledger *cartapp.Ledger) *LedgerCart {
	return &LedgerCart{ledger: ledger}
}

func (c *LedgerCart) ItemCount() int64 {
	return c.ledger.ItemCount()
}

func (c *LedgerCart) Subtotal() decimal.Decimal {
	return c.ledger.Totals().Subtotal
}

func (c *LedgerCart) Clear() {
	c.ledger.Clear()
}
