package adapter

import (
	cartapp "github.com/leng404/gymshop/internal/cart/app"
	catalogapp "github.com/leng404/gymshop/internal/catalog/app"
)

// CatalogStoreReader adapts the catalog store to the cart's
// CatalogReader port.
type CatalogStoreReader struct {
	store *catalogapp.Store
}

func NewCatalogStoreReader(store *catalogapp.Store) *CatalogStoreReader {
	return &CatalogStoreReader{store: store}
}

func (r *CatalogStoreReader) FindByID(id string) (cartapp.Product, bool) {
	p, ok := r.store.FindByID(id)
	if !ok {
		return cartapp.Product{}, false
	}

	return cartapp.Product{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	}, true
}
