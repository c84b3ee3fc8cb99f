// Package storefront ties the catalog, the cart ledger and the
// checkout flow together behind one controller and an HTTP surface.
package storefront

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	cartapp "github.com/leng404/gymshop/internal/cart/app"
	catalogapp "github.com/leng404/gymshop/internal/catalog/app"
	catalogdomain "github.com/leng404/gymshop/internal/catalog/domain"
	checkoutapp "github.com/leng404/gymshop/internal/checkout/app"
	checkoutdomain "github.com/leng404/gymshop/internal/checkout/domain"
	"github.com/leng404/gymshop/internal/view"
)

const (
	loadFailedNotice   = "Failed to load products."
	noResultsNotice    = "Search Products Is Not Found....!"
	emptyCatalogNotice = "No products available."
)

// CatalogFetcher is the inbound feed boundary.
type CatalogFetcher interface {
	Fetch(ctx context.Context) ([]catalogdomain.RawProduct, error)
}

// CartFragment is what every cart mutation hands back: the re-rendered
// panel and summary plus the badge count, all reflecting post-mutation
// state.
type CartFragment struct {
	PanelHTML   string
	SummaryHTML string
	ItemCount   int64
}

// Controller serializes all storefront events. One mutex stands in for
// the browser's single event loop: no two mutations interleave, and
// the fragment returned by a mutation is rendered before the lock is
// released, so it always reflects the post-mutation state.
type Controller struct {
	mu       sync.Mutex
	log      *slog.Logger
	catalog  *catalogapp.Store
	ledger   *cartapp.Ledger
	checkout *checkoutapp.Service
	notify   checkoutapp.Notifier

	degraded bool
}

func NewController(
	log *slog.Logger,
	catalog *catalogapp.Store,
	ledger *cartapp.Ledger,
	checkout *checkoutapp.Service,
	notify checkoutapp.Notifier,
) *Controller {
	return &Controller{
		log:      log,
		catalog:  catalog,
		ledger:   ledger,
		checkout: checkout,
		notify:   notify,
	}
}

// LoadCatalog populates the store from the feed. On failure the
// storefront keeps running in a degraded state: the grid shows a load
// error instead of going silently stale.
func (c *Controller) LoadCatalog(ctx context.Context, fetcher CatalogFetcher) error {
	records, err := fetcher.Fetch(ctx)
	if err != nil {
		c.mu.Lock()
		c.degraded = true
		c.mu.Unlock()
		c.log.Error("catalog load failed", slog.Any("err", err))
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.catalog.Load(records); err != nil {
		c.degraded = true
		return err
	}
	c.degraded = false
	c.log.Info("catalog loaded", slog.Int("products", c.catalog.Len()))
	return nil
}

// Grid renders the product grid for the given search query.
func (c *Controller) Grid(query string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderGrid(query)
}

// Cart renders the current cart fragment without mutating anything.
func (c *Controller) Cart() (CartFragment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cartFragment()
}

// AddToCart adds one unit of the product and returns the re-rendered
// cart.
func (c *Controller) AddToCart(productID string) (CartFragment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, err := c.ledger.AddToCart(productID)
	if err != nil {
		c.notify.Notify(checkoutapp.NotifyError, "Error", "Product not found.")
		return CartFragment{}, err
	}

	c.notify.Notify(checkoutapp.NotifySuccess, "Added", fmt.Sprintf("%s added to cart.", line.Name))
	return c.cartFragment()
}

// UpdateQuantity applies a quantity delta; a result below 1 removes
// the line.
func (c *Controller) UpdateQuantity(productID string, delta int64) (CartFragment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.ledger.UpdateQuantity(productID, delta); err != nil {
		return CartFragment{}, err
	}
	return c.cartFragment()
}

// Remove drops the line if present. Removing a missing line is not an
// error; the flag reports whether anything changed.
func (c *Controller) Remove(productID string) (CartFragment, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := c.ledger.Remove(productID)
	frag, err := c.cartFragment()
	return frag, removed, err
}

// Checkout runs the confirmation flow with the caller's answer bound
// into the confirmer.
func (c *Controller) Checkout(ctx context.Context, confirm checkoutapp.Confirmer) (checkoutdomain.Receipt, CartFragment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	receipt, err := c.checkout.Checkout(ctx, confirm)
	frag, renderErr := c.cartFragment()
	if err != nil {
		return checkoutdomain.Receipt{}, frag, err
	}
	if renderErr != nil {
		return receipt, CartFragment{}, renderErr
	}
	return receipt, frag, nil
}

// renderGrid and cartFragment expect the lock to be held.

func (c *Controller) renderGrid(query string) (string, error) {
	if c.degraded {
		return view.RenderGrid(view.NoticeGrid(loadFailedNotice))
	}

	products := c.catalog.FilterByName(query)
	if len(products) == 0 {
		if c.catalog.Len() == 0 {
			return view.RenderGrid(view.NoticeGrid(emptyCatalogNotice))
		}
		return view.RenderGrid(view.NoticeGrid(noResultsNotice))
	}
	return view.RenderGrid(view.BuildGrid(products))
}

func (c *Controller) cartFragment() (CartFragment, error) {
	model := view.BuildCart(c.ledger.Lines(), c.ledger.Totals(), c.ledger.ItemCount())

	panel, err := view.RenderCartPanel(model)
	if err != nil {
		return CartFragment{}, err
	}
	summary, err := view.RenderSummary(model)
	if err != nil {
		return CartFragment{}, err
	}

	return CartFragment{
		PanelHTML:   panel,
		SummaryHTML: summary,
		ItemCount:   model.ItemCount,
	}, nil
}

// Page renders the whole page: grid for the query plus the cart.
func (c *Controller) Page(query string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	grid, err := c.renderGrid(query)
	if err != nil {
		return "", err
	}

	model := view.BuildCart(c.ledger.Lines(), c.ledger.Totals(), c.ledger.ItemCount())
	return view.RenderPage(grid, model)
}
