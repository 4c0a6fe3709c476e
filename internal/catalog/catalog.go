// Package catalog provides the immutable item catalog keyed by item code
package catalog

import (
	"sort"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

// Catalog maps item codes to their descriptors. It is built once and never
// modified, so it is safe to share between goroutines.
type Catalog struct {
	items map[int]inventory.ItemDescriptor
}

// New indexes descriptors by code. Duplicate codes, codes below 1 and
// unknown categories are rejected.
func New(descriptors []inventory.ItemDescriptor) (*Catalog, error) {
	items := make(map[int]inventory.ItemDescriptor, len(descriptors))

	for i, d := range descriptors {
		if d.Code <= inventory.EmptyItemCode {
			return nil, errors.InvalidArgumentf("item at position %d has invalid code %d", i, d.Code).
				WithMeta("position", i)
		}
		if !d.Category.IsValid() {
			return nil, errors.InvalidArgumentf("item %d has unknown category %q", d.Code, d.Category).
				WithMeta("item_code", d.Code)
		}
		if existing, ok := items[d.Code]; ok {
			return nil, errors.AlreadyExistsf("duplicate item code %d (%q and %q)", d.Code, existing.Name, d.Name).
				WithMeta("item_code", d.Code)
		}
		items[d.Code] = d
	}

	return &Catalog{items: items}, nil
}

// Lookup returns the descriptor for code, false when the code is unknown
func (c *Catalog) Lookup(code int) (inventory.ItemDescriptor, bool) {
	d, ok := c.items[code]
	return d, ok
}

// Len returns the number of items in the catalog
func (c *Catalog) Len() int {
	return len(c.items)
}

// Codes returns every item code in ascending order
func (c *Catalog) Codes() []int {
	codes := make([]int, 0, len(c.items))
	for code := range c.items {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// StartingItems returns the items a new game begins with, ordered by code
func (c *Catalog) StartingItems() []inventory.ItemDescriptor {
	var out []inventory.ItemDescriptor
	for _, code := range c.Codes() {
		if d := c.items[code]; d.IsStartingItem {
			out = append(out, d)
		}
	}
	return out
}
