package view

import (
	"github.com/shopspring/decimal"

	cartdomain "github.com/leng404/gymshop/internal/cart/domain"
	catalogdomain "github.com/leng404/gymshop/internal/catalog/domain"
)

// descriptionLimit is how much of a product description the grid
// card shows before the ellipsis.
const descriptionLimit = 64

// GridItem is one product card. Money fields arrive pre-formatted;
// text fields stay raw and are escaped by the template layer.
type GridItem struct {
	ID          string
	Name        string
	Description string
	Image       string
	Price       string
}

// Grid is the product grid view model. A non-empty Notice replaces
// the cards (load failure, empty search result).
type Grid struct {
	Items  []GridItem
	Notice string
}

// CartLine is one row of the cart panel.
type CartLine struct {
	ProductID string
	Name      string
	Image     string
	Price     string
	Quantity  int64
}

// Cart is the cart panel plus summary. ItemCount feeds the badge.
type Cart struct {
	Lines     []CartLine
	ItemCount int64
	Subtotal  string
	Delivery  string
	Total     string
}

// BuildGrid projects catalog products into the grid model.
// Descriptions are cut to 64 runes with a trailing ellipsis, grid
// view only.
func BuildGrid(products []catalogdomain.Product) Grid {
	items := make([]GridItem, 0, len(products))
	for _, p := range products {
		items = append(items, GridItem{
			ID:          p.ID,
			Name:        p.Name,
			Description: truncate(p.Description, descriptionLimit),
			Image:       p.Image,
			Price:       money(p.Price),
		})
	}
	return Grid{Items: items}
}

// NoticeGrid renders a message instead of cards.
func NoticeGrid(msg string) Grid {
	return Grid{Notice: msg}
}

// BuildCart projects ledger lines and totals into the cart model.
func BuildCart(lines []cartdomain.Line, totals cartdomain.Totals, itemCount int64) Cart {
	rows := make([]CartLine, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, CartLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Image:     l.Image,
			Price:     money(l.Price),
			Quantity:  l.Quantity,
		})
	}
	return Cart{
		Lines:     rows,
		ItemCount: itemCount,
		Subtotal:  money(totals.Subtotal),
		Delivery:  money(totals.DeliveryFee),
		Total:     money(totals.Total),
	}
}

// money formats with exactly two fractional digits. Internal values
// keep full precision; this is the presentation boundary.
func money(d decimal.Decimal) string {
	return d.StringFixed(2) + " $"
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) > limit {
		r = r[:limit]
	}
	return string(r) + "..."
}
