// Package store provides an interface for product storage operations.
package store

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Product represents a single catalog entry in the store.
// Name is the lookup key, but it is not required to be unique.
type Product struct {
	Name     string
	Quantity int
	Price    float64
	Category string
}

// String renders the product the way the catalog listing shows it.
func (p Product) String() string {
	return fmt.Sprintf("Name: %s, Quantity: %d, Price: %s, Category: %s",
		p.Name, p.Quantity, FormatPrice(p.Price), p.Category)
}

// FormatPrice renders a price in its shortest round-trip form (2.5, 9.99, 10).
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// SortKey selects the field the catalog is ordered by.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByPrice    SortKey = "price"
	SortByQuantity SortKey = "quantity"
)

// Filter narrows a listing to one category and an optional inclusive price range.
// A nil bound is not applied.
type Filter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// ProductStore is an interface for product storage operations.
// Every name-keyed operation acts on the first product with that name, in the
// current order of the sequence.
type ProductStore interface {
	// Add appends a new product to the end of the sequence.
	// Duplicate names are accepted; later entries are shadowed for name lookups.
	Add(p Product)

	// Update overwrites quantity, price and category of the first product named name.
	// Returns ErrProductNotFound if no product has that name.
	Update(name string, quantity int, price float64, category string) (*Product, error)

	// DeleteByName removes the first product named name.
	// Returns ErrProductNotFound if no product has that name.
	DeleteByName(name string) error

	// Sell takes quantity units out of the first product named name and returns it
	// with the remaining stock. Returns a *StockError when fewer units are on hand,
	// leaving the product unchanged, or ErrProductNotFound.
	Sell(name string, quantity int) (*Product, error)

	// FindAll returns a copy of every product in the current order.
	FindAll() []Product

	// FindByName returns the first product named name.
	// Returns ErrProductNotFound if no product has that name.
	FindByName(name string) (*Product, error)

	// Sort reorders the sequence in place with a stable sort on key.
	// Returns ErrInvalidSortKey and leaves the order untouched for an unknown key.
	Sort(key SortKey) error

	// Filter returns the products matching f in their current relative order.
	// Returns ErrNoMatchingProducts if nothing matches.
	Filter(f Filter) ([]Product, error)

	// TotalValue returns the exact sum of price * quantity over all products.
	TotalValue() decimal.Decimal
}
