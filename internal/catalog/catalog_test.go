package catalog_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-inventory/internal/catalog"
	"github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) descriptors() []inventory.ItemDescriptor {
	return []inventory.ItemDescriptor{
		{Code: 3, Category: inventory.CategoryCommodity, Name: "Wood"},
		{Code: 1, Category: inventory.CategorySeed, Name: "Parsnip Seed"},
		{Code: 2, Category: inventory.CategoryHoeingTool, Name: "Hoe", IsStartingItem: true},
	}
}

func (s *CatalogTestSuite) TestNew() {
	testCases := []struct {
		name     string
		input    []inventory.ItemDescriptor
		wantErr  bool
		wantCode errors.Code
		errMsg   string
	}{
		{
			name:  "success with unique codes",
			input: s.descriptors(),
		},
		{
			name:  "success with no items",
			input: nil,
		},
		{
			name: "rejects duplicate codes",
			input: []inventory.ItemDescriptor{
				{Code: 7, Category: inventory.CategorySeed, Name: "A"},
				{Code: 7, Category: inventory.CategorySeed, Name: "B"},
			},
			wantErr:  true,
			wantCode: errors.CodeAlreadyExists,
			errMsg:   "duplicate item code 7",
		},
		{
			name: "rejects empty sentinel code",
			input: []inventory.ItemDescriptor{
				{Code: 0, Category: inventory.CategorySeed, Name: "Nothing"},
			},
			wantErr:  true,
			wantCode: errors.CodeInvalidArgument,
			errMsg:   "invalid code 0",
		},
		{
			name: "rejects negative code",
			input: []inventory.ItemDescriptor{
				{Code: -4, Category: inventory.CategorySeed, Name: "Negative"},
			},
			wantErr:  true,
			wantCode: errors.CodeInvalidArgument,
		},
		{
			name: "rejects unknown category",
			input: []inventory.ItemDescriptor{
				{Code: 4, Category: "weapon", Name: "Sword"},
			},
			wantErr:  true,
			wantCode: errors.CodeInvalidArgument,
			errMsg:   "unknown category",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, err := catalog.New(tc.input)
			if tc.wantErr {
				s.Require().Error(err)
				s.Nil(c)
				s.Equal(tc.wantCode, errors.GetCode(err))
				if tc.errMsg != "" {
					s.Contains(err.Error(), tc.errMsg)
				}
				return
			}
			s.Require().NoError(err)
			s.Equal(len(tc.input), c.Len())
		})
	}
}

func (s *CatalogTestSuite) TestLookup() {
	c, err := catalog.New(s.descriptors())
	s.Require().NoError(err)

	d, ok := c.Lookup(2)
	s.True(ok)
	s.Equal("Hoe", d.Name)

	_, ok = c.Lookup(99)
	s.False(ok)

	_, ok = c.Lookup(inventory.EmptyItemCode)
	s.False(ok)

	_, ok = c.Lookup(inventory.NoSelection)
	s.False(ok)
}

func (s *CatalogTestSuite) TestDoesNotAliasInput() {
	input := s.descriptors()
	c, err := catalog.New(input)
	s.Require().NoError(err)

	input[0].Name = "Changed"
	d, ok := c.Lookup(3)
	s.Require().True(ok)
	s.Equal("Wood", d.Name)
}

func (s *CatalogTestSuite) TestCodesAndStartingItems() {
	c, err := catalog.New(s.descriptors())
	s.Require().NoError(err)

	s.Equal([]int{1, 2, 3}, c.Codes())

	starting := c.StartingItems()
	s.Require().Len(starting, 1)
	s.Equal(2, starting[0].Code)
}

func (s *CatalogTestSuite) TestLoadJSON() {
	raw := `{"items":[{"code":5,"category":"seed","name":"Turnip Seed","can_be_picked_up":true}]}`
	c, err := catalog.Load(strings.NewReader(raw), catalog.FormatJSON)
	s.Require().NoError(err)

	d, ok := c.Lookup(5)
	s.Require().True(ok)
	s.Equal(inventory.CategorySeed, d.Category)
	s.True(d.CanBePickedUp)
}

func (s *CatalogTestSuite) TestLoadRejectsUnknownFields() {
	_, err := catalog.Load(strings.NewReader(`{"items":[{"code":5,"colour":"red"}]}`), catalog.FormatJSON)
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = catalog.Load(strings.NewReader("items:\n  - code: 5\n    colour: red\n"), catalog.FormatYAML)
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestLoadYAMLDuplicate() {
	raw := `
items:
  - code: 8
    category: commodity
    name: Stone
  - code: 8
    category: commodity
    name: Pebble
`
	_, err := catalog.Load(strings.NewReader(raw), catalog.FormatYAML)
	s.Error(err)
	s.Equal(errors.CodeAlreadyExists, errors.GetCode(err))
}

func (s *CatalogTestSuite) TestLoadFile() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "items.yml")
	s.Require().NoError(os.WriteFile(path, []byte("items:\n  - code: 11\n    category: furniture\n    name: Chair\n"), 0o600))

	c, err := catalog.LoadFile(path)
	s.Require().NoError(err)
	s.Equal(1, c.Len())

	_, err = catalog.LoadFile(filepath.Join(dir, "missing.json"))
	s.True(errors.IsNotFound(err))

	_, err = catalog.LoadFile(filepath.Join(dir, "items.toml"))
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestDefault() {
	c, err := catalog.Default()
	s.Require().NoError(err)
	s.Positive(c.Len())

	for _, d := range c.StartingItems() {
		s.True(d.Category.IsTool(), "starting item %s should be a tool", d.Name)
	}
}

func (s *CatalogTestSuite) TestSchema() {
	schema := catalog.Schema()
	s.Require().NotNil(schema)
	s.Equal("Item Catalog", schema.Title)

	data, err := json.Marshal(schema)
	s.Require().NoError(err)
	s.Contains(string(data), "watering_tool")
	s.Contains(string(data), "use_grid_radius")
}
