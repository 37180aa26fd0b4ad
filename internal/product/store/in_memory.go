package store

import (
	"cmp"
	"slices"
	"sync"

	"github.com/abgdnv/stockroom/internal/product/errors"
	"github.com/shopspring/decimal"
)

// inMemory implements ProductStore using an ordered slice.
type inMemory struct {
	mu       sync.RWMutex
	products []Product
}

// NewInMemoryStore creates a new, empty instance of ProductStore.
func NewInMemoryStore() ProductStore {
	return &inMemory{
		products: make([]Product, 0),
	}
}

// indexOf returns the position of the first product named name, or -1.
// Callers must hold the lock.
func (s *inMemory) indexOf(name string) int {
	return slices.IndexFunc(s.products, func(p Product) bool {
		return p.Name == name
	})
}

// Add appends a product.
func (s *inMemory) Add(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, p)
}

// Update overwrites the first matching product in place.
func (s *inMemory) Update(name string, quantity int, price float64, category string) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(name)
	if i < 0 {
		return nil, errors.ErrProductNotFound
	}
	s.products[i].Quantity = quantity
	s.products[i].Price = price
	s.products[i].Category = category

	updated := s.products[i]
	return &updated, nil
}

// DeleteByName removes the first matching product.
func (s *inMemory) DeleteByName(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(name)
	if i < 0 {
		return errors.ErrProductNotFound
	}
	s.products = slices.Delete(s.products, i, i+1)
	return nil
}

// Sell decrements the stock of the first matching product.
func (s *inMemory) Sell(name string, quantity int) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(name)
	if i < 0 {
		return nil, errors.ErrProductNotFound
	}
	if s.products[i].Quantity < quantity {
		return nil, &errors.StockError{
			Name:      name,
			Requested: quantity,
			Available: s.products[i].Quantity,
		}
	}
	s.products[i].Quantity -= quantity

	sold := s.products[i]
	return &sold, nil
}

// FindAll retrieves all products.
func (s *inMemory) FindAll() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.products)
}

// FindByName retrieves the first product with the given name.
func (s *inMemory) FindByName(name string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(name)
	if i < 0 {
		return nil, errors.ErrProductNotFound
	}
	found := s.products[i]
	return &found, nil
}

// Sort orders the products by key, keeping equal keys in their relative order.
func (s *inMemory) Sort(key SortKey) error {
	var compare func(a, b Product) int
	switch key {
	case SortByName:
		compare = func(a, b Product) int { return cmp.Compare(a.Name, b.Name) }
	case SortByPrice:
		compare = func(a, b Product) int { return cmp.Compare(a.Price, b.Price) }
	case SortByQuantity:
		compare = func(a, b Product) int { return cmp.Compare(a.Quantity, b.Quantity) }
	default:
		return errors.ErrInvalidSortKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	slices.SortStableFunc(s.products, compare)
	return nil
}

// Filter selects products by exact category and optional price bounds.
func (s *inMemory) Filter(f Filter) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]Product, 0)
	for _, p := range s.products {
		if p.Category != f.Category {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}
	if len(filtered) == 0 {
		return nil, errors.ErrNoMatchingProducts
	}
	return filtered, nil
}

// TotalValue sums price * quantity using decimal arithmetic.
func (s *inMemory) TotalValue() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, p := range s.products {
		total = total.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return total
}
