package app

import (
	"strings"

	"github.com/go-faster/errors"

	"github.com/leng404/gymshop/internal/catalog/domain"
)

// ErrMalformedPayload is returned when the feed payload is not a
// sequence of product records.
var ErrMalformedPayload = errors.New("catalog payload is not a product list")

// Store holds the catalog in memory. Populated once at startup by
// Load; reads after that are lock-free because nothing mutates.
type Store struct {
	products []domain.Product
	byID     map[string]int
}

func NewStore() *Store {
	return &Store{byID: map[string]int{}}
}

// Load replaces the store contents with the normalized records.
// An empty slice is a valid catalog ("no products"), not an error.
func (s *Store) Load(records []domain.RawProduct) error {
	products := make([]domain.Product, 0, len(records))
	byID := make(map[string]int, len(records))

	for _, r := range records {
		p := r.Normalize()
		if _, dup := byID[p.ID]; dup {
			continue
		}
		byID[p.ID] = len(products)
		products = append(products, p)
	}

	s.products = products
	s.byID = byID
	return nil
}

// FindById semantics: ids were coerced to string at normalization,
// so lookup is an exact string compare.
func (s *Store) FindByID(id string) (domain.Product, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return s.products[idx], true
}

// FilterByName matches case-insensitively on a name substring.
// An empty or whitespace query returns the full catalog in load order.
func (s *Store) FilterByName(query string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.All()
	}

	var out []domain.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) All() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Len() int {
	return len(s.products)
}
