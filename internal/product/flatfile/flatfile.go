// Package flatfile reads and writes the catalog as comma-separated lines:
//
//	name,quantity,price,category
//
// There is no header and no quoting, so a comma inside a name or category
// cannot be represented.
package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	producterrors "github.com/abgdnv/stockroom/internal/product/errors"
	"github.com/abgdnv/stockroom/internal/product/store"
)

const fieldCount = 4

// Decode parses products from r and passes each one to add as soon as it is read.
// It stops at the first malformed line; products handed to add before that stay added.
// Blank lines are skipped. Returns the number of products added.
func Decode(r io.Reader, add func(store.Product)) (int, error) {
	scanner := bufio.NewScanner(r)
	added := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p, err := parseLine(line)
		if err != nil {
			return added, fmt.Errorf("%w: line %d: %w", producterrors.ErrPersistence, lineNo, err)
		}
		add(p)
		added++
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("%w: %w", producterrors.ErrPersistence, err)
	}
	return added, nil
}

// parseLine splits one record into its four fields.
func parseLine(line string) (store.Product, error) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldCount {
		return store.Product{}, fmt.Errorf("expected %d fields, got %d", fieldCount, len(fields))
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return store.Product{}, fmt.Errorf("invalid quantity %q: %w", fields[1], err)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return store.Product{}, fmt.Errorf("invalid price %q: %w", fields[2], err)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return store.Product{}, fmt.Errorf("invalid price %q: not a finite number", fields[2])
	}
	return store.Product{
		Name:     fields[0],
		Quantity: quantity,
		Price:    price,
		Category: fields[3],
	}, nil
}

// Encode writes one line per product, in the given order.
func Encode(w io.Writer, products []store.Product) error {
	bw := bufio.NewWriter(w)
	for _, p := range products {
		if _, err := fmt.Fprintf(bw, "%s,%d,%s,%s\n", p.Name, p.Quantity, store.FormatPrice(p.Price), p.Category); err != nil {
			return fmt.Errorf("%w: %w", producterrors.ErrPersistence, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", producterrors.ErrPersistence, err)
	}
	return nil
}

// LoadFile decodes the file at path into add.
// A missing file is reported as ErrFileNotFound, every other failure as ErrPersistence.
func LoadFile(path string, add func(store.Product)) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("%w: %w", producterrors.ErrFileNotFound, err)
		}
		return 0, fmt.Errorf("%w: %w", producterrors.ErrPersistence, err)
	}
	defer f.Close()

	return Decode(f, add)
}

// SaveFile replaces the file at path with the given products.
func SaveFile(path string, products []store.Product) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", producterrors.ErrPersistence, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: %w", producterrors.ErrPersistence, closeErr)
		}
	}()

	return Encode(f, products)
}
