package app

import "github.com/shopspring/decimal"

// CatalogReader resolves product ids at add time. The ledger never
// holds a reference into the catalog; it copies what it needs.
type CatalogReader interface {
	FindByID(id string) (Product, bool)
}

// Product carries the fields the ledger snapshots onto a new line.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Image string
}
