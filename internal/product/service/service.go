// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abgdnv/stockroom/internal/product/chart"
	producterrors "github.com/abgdnv/stockroom/internal/product/errors"
	"github.com/abgdnv/stockroom/internal/product/flatfile"
	"github.com/abgdnv/stockroom/internal/product/store"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ProductService defines the methods for managing the catalog.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// Create appends a new product. Duplicate names are allowed.
	// Returns ErrInvalidInput if quantity or price is negative.
	Create(ctx context.Context, product ProductDto) (*ProductDto, error)

	// Update overwrites quantity, price and category of the first product with the same name.
	// Returns ErrProductNotFound or ErrInvalidInput.
	Update(ctx context.Context, product ProductDto) (*ProductDto, error)

	// DeleteByName removes the first product with the given name.
	// Returns ErrProductNotFound if no product exists with the given name.
	DeleteByName(ctx context.Context, name string) error

	// Sell removes quantity units from stock and returns the product with what remains.
	// Returns ErrProductNotFound, ErrInvalidInput or a *StockError.
	Sell(ctx context.Context, name string, quantity int) (*ProductDto, error)

	// FindAll returns every product in the current order.
	// Returns ErrNoProducts if the catalog is empty.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// FindByName returns the first product with the given name.
	// Returns ErrProductNotFound if no product exists with the given name.
	FindByName(ctx context.Context, name string) (*ProductDto, error)

	// Sort reorders the catalog by name, price or quantity.
	// Returns ErrInvalidSortKey for anything else.
	Sort(ctx context.Context, key string) error

	// Filter returns the products of one category, optionally within an inclusive price range.
	// Returns ErrNoMatchingProducts if nothing matches.
	Filter(ctx context.Context, category string, minPrice, maxPrice *float64) ([]ProductDto, error)

	// TotalValue returns the sum of price * quantity, rounded to two decimals.
	TotalValue(ctx context.Context) decimal.Decimal

	// StockLevels returns one chart bar per product: name against quantity.
	// Returns ErrNoChartData if the catalog is empty.
	StockLevels(ctx context.Context) ([]chart.Bar, error)

	// Load adds every product found in the file at path and returns how many were added.
	// Products read before a failure stay in the catalog.
	Load(ctx context.Context, path string) (int, error)

	// Save writes the catalog to the file at path and returns how many products were written.
	Save(ctx context.Context, path string) (int, error)
}

// Service implements ProductService.
type Service struct {
	repository store.ProductStore
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore, logger *slog.Logger) *Service {
	return &Service{
		repository: repo,
		validate:   validator.New(),
		logger:     logger.With("component", "service"),
	}
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity" validate:"min=0"`
	Price    float64 `json:"price"    validate:"min=0"`
	Category string  `json:"category"`
}

// String renders the DTO exactly like the stored product.
func (d ProductDto) String() string {
	return toProduct(d).String()
}

// Create validates and appends a product.
func (s *Service) Create(ctx context.Context, product ProductDto) (*ProductDto, error) {
	if err := s.validateStruct(product); err != nil {
		return nil, fmt.Errorf("failed to create product %q: %w", product.Name, err)
	}
	p := toProduct(product)
	s.repository.Add(p)
	s.logger.InfoContext(ctx, "Product created", "name", p.Name, "quantity", p.Quantity, "price", p.Price, "category", p.Category)

	return toDto(&p), nil
}

// Update validates and overwrites the first product with the same name.
func (s *Service) Update(ctx context.Context, product ProductDto) (*ProductDto, error) {
	if err := s.validateStruct(product); err != nil {
		return nil, fmt.Errorf("failed to update product %q: %w", product.Name, err)
	}
	updated, err := s.repository.Update(product.Name, product.Quantity, product.Price, product.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to update product %q: %w", product.Name, err)
	}
	s.logger.InfoContext(ctx, "Product updated", "name", updated.Name, "quantity", updated.Quantity, "price", updated.Price, "category", updated.Category)

	return toDto(updated), nil
}

// DeleteByName removes the first product with the given name.
func (s *Service) DeleteByName(ctx context.Context, name string) error {
	if err := s.repository.DeleteByName(name); err != nil {
		return fmt.Errorf("failed to remove product %q: %w", name, err)
	}
	s.logger.InfoContext(ctx, "Product removed", "name", name)
	return nil
}

// Sell decrements the stock of the first product with the given name.
func (s *Service) Sell(ctx context.Context, name string, quantity int) (*ProductDto, error) {
	if err := s.validate.Var(quantity, "min=0"); err != nil {
		return nil, fmt.Errorf("failed to sell product %q: %w: quantity must not be negative", name, producterrors.ErrInvalidInput)
	}
	sold, err := s.repository.Sell(name, quantity)
	if err != nil {
		var stockErr *producterrors.StockError
		if errors.As(err, &stockErr) {
			s.logger.WarnContext(ctx, "Not enough stock", "name", name, "requested", quantity, "available", stockErr.Available)
		}
		return nil, fmt.Errorf("failed to sell product %q: %w", name, err)
	}
	s.logger.InfoContext(ctx, "Product sold", "name", name, "sold", quantity, "remaining", sold.Quantity)

	return toDto(sold), nil
}

// FindAll retrieves every product as ProductDTOs.
func (s *Service) FindAll(ctx context.Context) ([]ProductDto, error) {
	products := s.repository.FindAll()
	if len(products) == 0 {
		return nil, producterrors.ErrNoProducts
	}
	s.logger.DebugContext(ctx, "Listed products", "count", len(products))

	return toDtos(products), nil
}

// FindByName retrieves the first product with the given name.
func (s *Service) FindByName(ctx context.Context, name string) (*ProductDto, error) {
	product, err := s.repository.FindByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %q: %w", name, err)
	}
	s.logger.DebugContext(ctx, "Product found", "name", name)

	return toDto(product), nil
}

// Sort reorders the catalog in place.
func (s *Service) Sort(ctx context.Context, key string) error {
	if err := s.repository.Sort(store.SortKey(key)); err != nil {
		return fmt.Errorf("failed to sort products by %q: %w", key, err)
	}
	s.logger.InfoContext(ctx, "Products sorted", "key", key)
	return nil
}

// Filter selects products by category and optional price bounds.
func (s *Service) Filter(ctx context.Context, category string, minPrice, maxPrice *float64) ([]ProductDto, error) {
	filtered, err := s.repository.Filter(store.Filter{
		Category: category,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to filter products of category %q: %w", category, err)
	}
	s.logger.DebugContext(ctx, "Filtered products", "category", category, "count", len(filtered))

	return toDtos(filtered), nil
}

// TotalValue returns the inventory valuation rounded to cents.
func (s *Service) TotalValue(ctx context.Context) decimal.Decimal {
	total := s.repository.TotalValue().Round(2)
	s.logger.DebugContext(ctx, "Computed total value", "total", total.StringFixed(2))
	return total
}

// StockLevels maps every product to a chart bar.
func (s *Service) StockLevels(ctx context.Context) ([]chart.Bar, error) {
	products := s.repository.FindAll()
	if len(products) == 0 {
		return nil, producterrors.ErrNoChartData
	}
	bars := make([]chart.Bar, len(products))
	for i, p := range products {
		bars[i] = chart.Bar{Label: p.Name, Value: p.Quantity}
	}
	s.logger.DebugContext(ctx, "Collected stock levels", "count", len(bars))
	return bars, nil
}

// Load reads products from a flat file straight into the store.
// Values are taken as written; the sign checks of Create do not apply.
func (s *Service) Load(ctx context.Context, path string) (int, error) {
	n, err := flatfile.LoadFile(path, s.repository.Add)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error loading data", "path", path, "loaded", n, "error", err)
		return n, fmt.Errorf("failed to load products from %s: %w", path, err)
	}
	s.logger.InfoContext(ctx, "Data loaded", "path", path, "loaded", n)
	return n, nil
}

// Save writes the current catalog to a flat file.
func (s *Service) Save(ctx context.Context, path string) (int, error) {
	products := s.repository.FindAll()
	if err := flatfile.SaveFile(path, products); err != nil {
		s.logger.ErrorContext(ctx, "Error saving data", "path", path, "error", err)
		return 0, fmt.Errorf("failed to save products to %s: %w", path, err)
	}
	s.logger.InfoContext(ctx, "Data saved", "path", path, "saved", len(products))
	return len(products), nil
}

// validateStruct turns validator failures into ErrInvalidInput with field-level detail.
func (s *Service) validateStruct(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			// fieldErr.Tag() returns "min", etc.
			details = append(details, fieldErr.Field()+" failed on rule: "+fieldErr.Tag())
		}
		return fmt.Errorf("%w: %s", producterrors.ErrInvalidInput, strings.Join(details, ", "))
	}
	return fmt.Errorf("%w: %v", producterrors.ErrInvalidInput, err)
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		Name:     product.Name,
		Quantity: product.Quantity,
		Price:    product.Price,
		Category: product.Category,
	}
}

func toDtos(products []store.Product) []ProductDto {
	dtos := make([]ProductDto, len(products))
	for i := range products {
		dtos[i] = *toDto(&products[i])
	}
	return dtos
}

func toProduct(dto ProductDto) store.Product {
	return store.Product{
		Name:     dto.Name,
		Quantity: dto.Quantity,
		Price:    dto.Price,
		Category: dto.Category,
	}
}
