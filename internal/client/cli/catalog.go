package cli

import (
	"context"
	"fmt"

	"github.com/rnand/qkart-v2/internal/client/models"
)

func (a *App) printProducts(products []models.Product) {
	if len(products) == 0 {
		if a.catalog.EmptySearch() {
			a.advise("No products found")
		} else {
			a.advise("No products loaded")
		}
		return
	}
	for _, p := range products {
		a.advise(fmt.Sprintf("%-18s  %-24s  %-12s  $%s  rating %.1f", p.ID, p.Name, p.Category, p.Cost, p.Rating))
	}
}

// List fetches the full catalog and prints it.
func (a *App) List(ctx context.Context) error {
	if _, err := a.catalog.LoadAll(ctx); err != nil {
		a.adviseError(err)
		return err
	}
	a.printProducts(a.catalog.View())
	return nil
}

// Search routes the query through the debounced dispatch: rapid
// successive searches collapse into one request carrying the last
// query, and the results print once it settles. An empty query clears
// the search and restores the full catalog.
func (a *App) Search(ctx context.Context, text string) error {
	a.catalog.QueueSearch(ctx, text, func(err error) {
		if err != nil {
			a.adviseError(err)
			return
		}
		a.printProducts(a.catalog.View())
	})
	return nil
}
