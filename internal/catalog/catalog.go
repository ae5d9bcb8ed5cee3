// Package catalog supplies the menu records that seed cart line items.
// The data is injected at construction; there is no module-level state.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/tastebite/orderapi/internal/domain"
	"github.com/tastebite/orderapi/pkg/errors"
)

// Catalog serves read-only menu data
type Catalog struct {
	items []domain.MenuItem
	byID  map[string]domain.MenuItem
}

// New creates a catalog over the given items.
func New(items []domain.MenuItem) *Catalog {
	byID := make(map[string]domain.MenuItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return &Catalog{items: items, byID: byID}
}

// List returns all menu items.
func (c *Catalog) List() []domain.MenuItem {
	out := make([]domain.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the menu item with the given ID.
func (c *Catalog) Get(id string) (domain.MenuItem, error) {
	it, ok := c.byID[id]
	if !ok {
		return domain.MenuItem{}, &errors.ErrNotFound{Resource: "menu item", ID: id}
	}
	return it, nil
}

// SeedMenu returns the default demo menu used when no real catalog backend
// is wired in.
func SeedMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "1", Name: "Margherita Pizza Deluxe", Restaurant: "Pizza Paradise", Price: decimal.NewFromFloat(12.99)},
		{ID: "2", Name: "Classic Coca-Cola Can (330ml)", Restaurant: "Pizza Paradise", Price: decimal.NewFromFloat(1.99)},
		{ID: "3", Name: "Crispy Garlic Bread Sticks (4 Pcs)", Restaurant: "Pizza Paradise", Price: decimal.NewFromFloat(4.50)},
		{ID: "4", Name: "Spicy Tuna Roll (8 Pcs)", Restaurant: "Sushi Central", Price: decimal.NewFromFloat(8.75)},
		{ID: "5", Name: "Double Cheeseburger", Restaurant: "Burger Hub", Price: decimal.NewFromFloat(9.25)},
	}
}
