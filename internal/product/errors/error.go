// Package errors provides custom error types for product-related operations.
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrInsufficientStock  = errors.New("not enough stock")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidSortKey     = errors.New("invalid sort criteria")
	ErrInvalidOption      = errors.New("invalid option")
	ErrNoProducts         = errors.New("no products available")
	ErrNoMatchingProducts = errors.New("no matching products found")
	ErrNoChartData        = errors.New("no data to visualize")
	ErrFileNotFound       = errors.New("file not found")
	ErrPersistence        = errors.New("persistence failure")
)

// StockError reports a sale that asked for more units than are on hand.
type StockError struct {
	Name      string
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("not enough stock for %q: requested %d, available %d", e.Name, e.Requested, e.Available)
}

// Unwrap lets errors.Is match ErrInsufficientStock.
func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}

// Kind is the closed set of failure classes the shell reports on.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInsufficientStock
	KindInvalidInput
	KindEmptyResult
	KindPersistence
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown",
	KindNotFound:          "not_found",
	KindInsufficientStock: "insufficient_stock",
	KindInvalidInput:      "invalid_input",
	KindEmptyResult:       "empty_result",
	KindPersistence:       "persistence",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// KindOf classifies err by walking its wrap chain. A nil error is KindUnknown.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrProductNotFound):
		return KindNotFound
	case errors.Is(err, ErrInsufficientStock):
		return KindInsufficientStock
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidSortKey),
		errors.Is(err, ErrInvalidOption):
		return KindInvalidInput
	case errors.Is(err, ErrNoProducts),
		errors.Is(err, ErrNoMatchingProducts),
		errors.Is(err, ErrNoChartData):
		return KindEmptyResult
	case errors.Is(err, ErrFileNotFound),
		errors.Is(err, ErrPersistence):
		return KindPersistence
	default:
		return KindUnknown
	}
}
