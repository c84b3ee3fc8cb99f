package domain

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a normalized catalog record. Immutable after Store.Load.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Image       string
	Description string
}

// FlexID accepts string or numeric ids from the source feed and
// coerces both to string.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// RawProduct mirrors the loose feed schema. The feed names fields
// inconsistently (id/productId, price/amount, image/img); nothing
// downstream of Normalize ever sees the variants.
type RawProduct struct {
	ID          FlexID           `json:"id"`
	ProductID   FlexID           `json:"productId"`
	Name        string           `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Amount      *decimal.Decimal `json:"amount"`
	Image       string           `json:"image"`
	Img         string           `json:"img"`
	Description string           `json:"description"`
}

// Normalize produces the canonical Product. Missing optional fields
// default, never error: price 0, image/description empty. A record
// with no id at all gets a generated one.
func (r RawProduct) Normalize() Product {
	id := string(r.ID)
	if id == "" {
		id = string(r.ProductID)
	}
	if id == "" {
		id = uuid.NewString()
	}

	price := decimal.Zero
	switch {
	case r.Price != nil:
		price = *r.Price
	case r.Amount != nil:
		price = *r.Amount
	}
	if price.IsNegative() {
		price = decimal.Zero
	}

	name := strings.TrimSpace(r.Name)
	if name == "" {
		name = "Product"
	}

	image := r.Image
	if image == "" {
		image = r.Img
	}

	return Product{
		ID:          id,
		Name:        name,
		Price:       price,
		Image:       image,
		Description: r.Description,
	}
}
