package app

import (
	"context"

	"github.com/shopspring/decimal"
)

// Cart is the slice of the ledger checkout needs: the badge count,
// the current subtotal, and the ability to empty it on success.
type Cart interface {
	ItemCount() int64
	Subtotal() decimal.Decimal
	Clear()
}

// Confirmer asks the user to approve the order. The call blocks until
// the user answers; the transition logic stays synchronous.
type Confirmer interface {
	Confirm(ctx context.Context, title, body string) (bool, error)
}

// NotifyKind severities mirror the storefront's dialog kinds.
type NotifyKind string

const (
	NotifySuccess NotifyKind = "success"
	NotifyError   NotifyKind = "error"
)

// Notifier surfaces outcomes to the user. Fire-and-forget.
type Notifier interface {
	Notify(kind NotifyKind, title, body string)
}
