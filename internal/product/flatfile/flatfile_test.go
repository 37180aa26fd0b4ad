package flatfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	producterrors "github.com/abgdnv/stockroom/internal/product/errors"
	"github.com/abgdnv/stockroom/internal/product/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collector gathers decoded products in order.
type collector struct {
	products []store.Product
}

func (c *collector) add(p store.Product) {
	c.products = append(c.products, p)
}

func Test_Encode(t *testing.T) {
	// given
	products := []store.Product{
		{Name: "Widget", Quantity: 10, Price: 2.5, Category: "Tools"},
		{Name: "Gadget", Quantity: 5, Price: 9.99, Category: "Tools"},
		{Name: "Crate", Quantity: 0, Price: 10, Category: "Storage"},
	}
	var buf bytes.Buffer
	// when
	err := Encode(&buf, products)
	// then
	require.NoError(t, err)
	assert.Equal(t, "Widget,10,2.5,Tools\nGadget,5,9.99,Tools\nCrate,0,10,Storage\n", buf.String())
}

func Test_Decode(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expected      []store.Product
		expectError   error
		errorContains string
	}{
		{
			name:  "Success - two lines",
			input: "Widget,10,2.5,Tools\nGadget,5,9.99,Tools\n",
			expected: []store.Product{
				{Name: "Widget", Quantity: 10, Price: 2.5, Category: "Tools"},
				{Name: "Gadget", Quantity: 5, Price: 9.99, Category: "Tools"},
			},
		},
		{
			name:  "Success - trailing zero price and CRLF",
			input: "Crate,1,10.0,Storage\r\n\r\nBox,2, 3.25 ,Storage\r\n",
			expected: []store.Product{
				{Name: "Crate", Quantity: 1, Price: 10, Category: "Storage"},
				{Name: "Box", Quantity: 2, Price: 3.25, Category: "Storage"},
			},
		},
		{
			name:     "Success - empty input",
			input:    "",
			expected: nil,
		},
		{
			name:  "Error - too many fields keeps earlier products",
			input: "Widget,10,2.5,Tools\nNuts, bolts,5,1.5,Hardware\nGadget,5,9.99,Tools\n",
			expected: []store.Product{
				{Name: "Widget", Quantity: 10, Price: 2.5, Category: "Tools"},
			},
			expectError:   producterrors.ErrPersistence,
			errorContains: "line 2: expected 4 fields, got 5",
		},
		{
			name:          "Error - quantity not an integer",
			input:         "Widget,ten,2.5,Tools\n",
			expectError:   producterrors.ErrPersistence,
			errorContains: `invalid quantity "ten"`,
		},
		{
			name:          "Error - NaN price",
			input:         "Widget,1,NaN,Tools\n",
			expectError:   producterrors.ErrPersistence,
			errorContains: `line 1: invalid price "NaN": not a finite number`,
		},
		{
			name:  "Error - infinite price keeps earlier products",
			input: "Widget,10,2.5,Tools\nGadget,1,+Inf,Tools\n",
			expected: []store.Product{
				{Name: "Widget", Quantity: 10, Price: 2.5, Category: "Tools"},
			},
			expectError:   producterrors.ErrPersistence,
			errorContains: `line 2: invalid price "+Inf"`,
		},
		{
			name:          "Error - price not a number",
			input:         "Widget,10,cheap,Tools\n",
			expectError:   producterrors.ErrPersistence,
			errorContains: `invalid price "cheap"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			c := &collector{}
			// when
			n, err := Decode(strings.NewReader(tc.input), c.add)
			// then
			assert.Equal(t, tc.expected, c.products)
			assert.Equal(t, len(tc.expected), n)
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.ErrorContains(t, err, tc.errorContains)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_LoadFile_NotFound(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "missing.txt")
	c := &collector{}
	// when
	n, err := LoadFile(path, c.add)
	// then
	assert.Zero(t, n)
	assert.ErrorIs(t, err, producterrors.ErrFileNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, producterrors.ErrPersistence)
}

func Test_SaveFile_Overwrites(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "inventory.txt")
	require.NoError(t, os.WriteFile(path, []byte("Old,1,1,Stale\nOlder,2,2,Stale\n"), 0o644))
	// when
	err := SaveFile(path, []store.Product{{Name: "Widget", Quantity: 10, Price: 2.5, Category: "Tools"}})
	// then
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Widget,10,2.5,Tools\n", string(data))
}

func Test_SaveFile_BadDirectory(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "inventory.txt")
	// when
	err := SaveFile(path, nil)
	// then
	assert.ErrorIs(t, err, producterrors.ErrPersistence)
}

func Test_RoundTrip(t *testing.T) {
	// given
	products := []store.Product{
		{Name: "Widget", Quantity: 10, Price: 2.5, Category: "Tools"},
		{Name: "Gadget", Quantity: 5, Price: 9.99, Category: "Tools"},
		{Name: "Thing With Spaces", Quantity: 0, Price: 0, Category: "Misc Stuff"},
		{Name: "Precise", Quantity: 3, Price: 0.1 + 0.2, Category: "Math"},
	}
	path := filepath.Join(t.TempDir(), "inventory.txt")
	require.NoError(t, SaveFile(path, products))
	fresh := store.NewInMemoryStore()
	// when
	n, err := LoadFile(path, fresh.Add)
	// then
	require.NoError(t, err)
	assert.Equal(t, len(products), n)
	assert.Equal(t, products, fresh.FindAll())
}
