package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-inventory/internal/catalog"
	"github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
)

// Shared fixture identifiers
const (
	TestSaveID = "player_inventory"
	TestGameID = "slot_1"
)

// Item codes in the test catalog
const (
	TestSeedCode      = 10
	TestCommodityCode = 20
	TestHoeCode       = 30
	TestCanCode       = 31
)

// TestSlots returns two stacks separated by an empty slot
func TestSlots() []inventory.Slot {
	return []inventory.Slot{
		{ItemCode: TestHoeCode, Quantity: 1},
		inventory.EmptySlot(),
		{ItemCode: TestCommodityCode, Quantity: 12},
	}
}

// TestDescriptors returns a seed, a commodity and two starting tools
func TestDescriptors() []inventory.ItemDescriptor {
	return []inventory.ItemDescriptor{
		{Code: TestSeedCode, Category: inventory.CategorySeed, Name: "Parsnip Seed", UseGridRadius: 1},
		{Code: TestCommodityCode, Category: inventory.CategoryCommodity, Name: "Wood", CanBeDropped: true},
		{Code: TestHoeCode, Category: inventory.CategoryHoeingTool, Name: "Hoe", IsStartingItem: true},
		{Code: TestCanCode, Category: inventory.CategoryWateringTool, Name: "Watering Can", IsStartingItem: true},
	}
}

// NewTestCatalog builds a catalog from TestDescriptors
func NewTestCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New(TestDescriptors())
	require.NoError(t, err)
	return cat
}
