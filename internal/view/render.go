// Package view turns catalog and cart state into HTML fragments.
// All escaping happens here: the templates are html/template, so
// every catalog- or user-supplied string is escaped contextually
// before it reaches markup. Callers never concatenate HTML.
package view

import (
	"embed"
	"html/template"
	"strings"

	"github.com/go-faster/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// RenderGrid renders the product grid fragment.
func RenderGrid(g Grid) (string, error) {
	return render("grid.tmpl", g)
}

// RenderCartPanel renders the line items of the cart.
func RenderCartPanel(c Cart) (string, error) {
	return render("cart.tmpl", c)
}

// RenderSummary renders the subtotal/delivery/total block.
func RenderSummary(c Cart) (string, error) {
	return render("summary.tmpl", c)
}

// Page is the full-page shell. Fragment fields are the outputs of the
// fragment renderers, already escaped.
type Page struct {
	ItemCount   int64
	GridHTML    template.HTML
	CartHTML    template.HTML
	SummaryHTML template.HTML
}

// RenderPage composes pre-rendered fragments into the page shell.
func RenderPage(grid string, cart Cart) (string, error) {
	panel, err := RenderCartPanel(cart)
	if err != nil {
		return "", err
	}
	summary, err := RenderSummary(cart)
	if err != nil {
		return "", err
	}

	return render("page.tmpl", Page{
		ItemCount:   cart.ItemCount,
		GridHTML:    template.HTML(grid),
		CartHTML:    template.HTML(panel),
		SummaryHTML: template.HTML(summary),
	})
}

func render(name string, data any) (string, error) {
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, name, data); err != nil {
		return "", errors.Wrapf(err, "render %s", name)
	}
	return sb.String(), nil
}
