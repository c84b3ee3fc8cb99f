package app

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/leng404/gymshop/internal/cart/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrLineNotFound    = errors.New("cart line not found")
)

// deliveryFee is charged whenever the cart is non-empty.
var deliveryFee = decimal.NewFromInt(1)

// Ledger is the in-memory cart: an ordered sequence of lines, at most
// one per product id. Order is insertion order, stable under quantity
// updates; a product removed and re-added lands at the end. The
// controller serializes all mutations, so the ledger itself does not
// lock.
type Ledger struct {
	catalog CatalogReader
	lines   []domain.Line
}

func NewLedger(catalog CatalogReader) *Ledger {
	return &Ledger{catalog: catalog}
}

// AddToCart resolves the product and either bumps the existing line's
// quantity by one, keeping its position, or appends a new line with
// quantity 1 and fields snapshotted from the product.
func (l *Ledger) AddToCart(productID string) (domain.Line, error) {
	p, ok := l.catalog.FindByID(productID)
	if !ok {
		return domain.Line{}, errors.Wrapf(ErrProductNotFound, "id %q", productID)
	}

	if i := l.indexOf(productID); i >= 0 {
		l.lines[i].Quantity++
		return l.lines[i], nil
	}

	line := domain.Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	}
	l.lines = append(l.lines, line)
	return line, nil
}

// UpdateQuantity applies delta (any integer) to the matching line.
// A resulting quantity below 1 removes the line and returns nil.
func (l *Ledger) UpdateQuantity(productID string, delta int64) (*domain.Line, error) {
	i := l.indexOf(productID)
	if i < 0 {
		return nil, errors.Wrapf(ErrLineNotFound, "id %q", productID)
	}

	l.lines[i].Quantity += delta
	if l.lines[i].Quantity < 1 {
		l.removeAt(i)
		return nil, nil
	}

	line := l.lines[i]
	return &line, nil
}

// Remove drops the matching line if present and reports whether a
// removal happened. Missing lines are not an error.
func (l *Ledger) Remove(productID string) bool {
	i := l.indexOf(productID)
	if i < 0 {
		return false
	}
	l.removeAt(i)
	return true
}

func (l *Ledger) Clear() {
	l.lines = nil
}

// Totals computes the summary in exact decimal arithmetic. The
// delivery fee is a flat 1.00 on any non-empty cart.
func (l *Ledger) Totals() domain.Totals {
	subtotal := decimal.Zero
	for _, line := range l.lines {
		subtotal = subtotal.Add(line.LineTotal())
	}

	fee := decimal.Zero
	if subtotal.IsPositive() {
		fee = deliveryFee
	}

	return domain.Totals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal.Add(fee),
	}
}

// ItemCount sums line quantities; this is the cart badge number, not
// the distinct line count.
func (l *Ledger) ItemCount() int64 {
	var n int64
	for _, line := range l.lines {
		n += line.Quantity
	}
	return n
}

// Lines returns a copy in insertion order for rendering.
func (l *Ledger) Lines() []domain.Line {
	out := make([]domain.Line, len(l.lines))
	copy(out, l.lines)
	return out
}

func (l *Ledger) indexOf(productID string) int {
	for i, line := range l.lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

func (l *Ledger) removeAt(i int) {
	l.lines = append(l.lines[:i], l.lines[i+1:]...)
}
