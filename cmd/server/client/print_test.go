package client

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-inventory/internal/handlers/inventory/v1alpha1"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := out
	out = &buf
	t.Cleanup(func() { out = prev })
	return &buf
}

func TestPrintInventory(t *testing.T) {
	buf := captureOutput(t)

	printInventory(&v1alpha1.Inventory{
		SaveID:   "player_inventory",
		Location: "player",
		Capacity: 3,
		Slots: []v1alpha1.Slot{
			{ItemCode: 10007, Quantity: 1},
			{},
			{ItemCode: 10000, Quantity: 12},
		},
		Selection: v1alpha1.Selection{ItemCode: 10000, Index: 2},
	})

	text := buf.String()
	assert.Contains(t, text, "player_inventory (player), 3 slots")
	assert.Contains(t, text, "10007")
	assert.Contains(t, text, "Selection: slot 2 (item 10000)")
}

func TestPrintInventoryWithoutSelection(t *testing.T) {
	buf := captureOutput(t)

	printInventory(&v1alpha1.Inventory{
		Capacity:  1,
		Slots:     []v1alpha1.Slot{{}},
		Selection: v1alpha1.Selection{ItemCode: -1, Index: -1},
	})
	assert.Contains(t, buf.String(), "Selection: none")

	buf.Reset()
	printInventory(nil)
	assert.Contains(t, buf.String(), "(no inventory)")
}

func TestPrintItem(t *testing.T) {
	buf := captureOutput(t)

	printItem(&v1alpha1.Item{
		Code:          10010,
		Category:      "watering_tool",
		Name:          "Watering Can",
		Description:   "Waters crops",
		UseGridRadius: 1,
		CanBeCarried:  true,
	})

	text := buf.String()
	assert.Contains(t, text, "10010 Watering Can [watering_tool]")
	assert.Contains(t, text, "use radius: 1 cells")
	assert.Contains(t, text, "carry: true")
}
