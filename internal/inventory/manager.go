package inventory

import (
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-inventory/internal/catalog"
	entities "github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-inventory/internal/pkg/idgen"
)

// Manager owns one slot list and every mutation applied to it.
//
// Each method that changes slot contents publishes exactly one ChangedEvent
// after the change. Calls that leave the slots untouched publish nothing.
// Out-of-range indices and non-positive codes or quantities are programming
// errors and panic.
type Manager struct {
	catalog     *catalog.Catalog
	saveID      string
	location    entities.Location
	highlighter Highlighter
	remover     EntityRemover
	idGen       idgen.Generator
	clock       clock.Clock

	slots       *entities.SlotList
	selection   entities.Selection
	subscribers []subscription
}

// New creates a manager with capacity empty slots and nothing selected
func New(cfg *Config) (*Manager, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	location := cfg.Location
	if location == "" {
		location = entities.LocationPlayer
	}
	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewSequential("sub")
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &Manager{
		catalog:     cfg.Catalog,
		saveID:      cfg.SaveID,
		location:    location,
		highlighter: cfg.Highlighter,
		remover:     cfg.EntityRemover,
		idGen:       idGen,
		clock:       clk,
		slots:       entities.NewSlotList(cfg.Capacity),
		selection:   entities.NoneSelected(),
	}, nil
}

// Capacity returns the fixed number of slots
func (m *Manager) Capacity() int {
	return m.slots.Len()
}

// Location returns which inventory this manager owns
func (m *Manager) Location() entities.Location {
	return m.location
}

// Slots returns a copy of every slot in order
func (m *Manager) Slots() []entities.Slot {
	return m.slots.Slots()
}

// AddItem stacks qty of code onto the first slot already holding code, or
// places it in the first empty slot. When neither exists the inventory is
// full and nothing happens.
func (m *Manager) AddItem(code, qty int) {
	if m.addItem(code, qty) {
		m.publish()
	}
}

// AddItemFromWorld adds an item picked up from the world and then destroys
// source. The source is destroyed even when the inventory was full and the
// item was not added. Reports whether the item was added.
func (m *Manager) AddItemFromWorld(code, qty int, source core.Entity) bool {
	added := m.addItem(code, qty)
	if added {
		m.publish()
	}

	if source == nil {
		return added
	}
	if m.remover != nil {
		m.remover.Destroy(source)
	}
	if !added {
		slog.Warn("picked up item lost, inventory full",
			"save_id", m.saveID,
			"item_code", code,
			"quantity", qty,
			"source_id", source.GetID())
	}

	return added
}

// TryAddItem reports whether AddItem would find a destination slot for code.
// It does not consider qty beyond requiring it to be positive.
func (m *Manager) TryAddItem(code, qty int) bool {
	mustPositive("item code", code)
	mustPositive("quantity", qty)

	_, ok := m.destinationFor(code)
	return ok
}

// AddItemAtIndex writes (code, existing quantity + qty) at index. The code is
// always restamped, so calling it on a slot holding a different item relabels
// that stack.
func (m *Manager) AddItemAtIndex(code, index, qty int) {
	m.addItemAtIndex(code, index, qty)
	m.publish()
}

// RemoveOneAtIndex takes one item from the stack at index. A stack that
// reaches zero becomes the empty slot.
func (m *Manager) RemoveOneAtIndex(index int) {
	m.removeOneAtIndex(index)
	m.publish()
}

// RemoveSelectedItemByOne takes one item from the selected slot and clears
// the UI highlight when that empties it. Panics when nothing is selected.
func (m *Manager) RemoveSelectedItemByOne() {
	index := m.selection.Index
	if !m.selection.IsSelected() {
		panic("inventory: remove from selection with nothing selected")
	}

	if m.removeOneAtIndex(index) && m.highlighter != nil {
		m.highlighter.ClearHighlight()
	}
	m.publish()
}

// RemoveAllAtIndex empties the slot at index regardless of its quantity
func (m *Manager) RemoveAllAtIndex(index int) {
	m.slots.Set(index, entities.EmptySlot())
	m.publish()
}

// SwapSlots exchanges the contents of two slots. Stacks of the same item are
// never merged.
func (m *Manager) SwapSlots(i, j int) {
	a, b := m.slots.Get(i), m.slots.Get(j)
	m.slots.Set(i, b)
	m.slots.Set(j, a)
	m.publish()
}

// GrantStartingItems adds one of every catalog item flagged as a starting
// item and returns how many were added. Publishes once if anything changed.
func (m *Manager) GrantStartingItems() int {
	added := 0
	for _, desc := range m.catalog.StartingItems() {
		if m.addItem(desc.Code, 1) {
			added++
		}
	}
	if added > 0 {
		m.publish()
	}

	slog.Info("starting items granted", "save_id", m.saveID, "count", added)
	return added
}

// SetSelection records which item and slot the player made active. The
// values are not checked against slot contents.
func (m *Manager) SetSelection(code, index int) {
	m.selection = entities.Selection{ItemCode: code, Index: index}
}

// ClearSelection resets the selection to none
func (m *Manager) ClearSelection() {
	m.selection = entities.NoneSelected()
}

// Selection returns the current selection, which may be stale
func (m *Manager) Selection() entities.Selection {
	return m.selection
}

// Descriptor looks up code in the catalog
func (m *Manager) Descriptor(code int) (entities.ItemDescriptor, bool) {
	return m.catalog.Lookup(code)
}

// SelectedDescriptor looks up the selected item code
func (m *Manager) SelectedDescriptor() (entities.ItemDescriptor, bool) {
	if m.selection.ItemCode == entities.NoSelection {
		return entities.ItemDescriptor{}, false
	}
	return m.catalog.Lookup(m.selection.ItemCode)
}

// CodeAt returns the item code held at index
func (m *Manager) CodeAt(index int) int {
	return m.slots.Get(index).ItemCode
}

// QuantityAt returns the quantity held at index
func (m *Manager) QuantityAt(index int) int {
	return m.slots.Get(index).Quantity
}

// DescriptorAt looks up the item held at index. Empty slots report false.
func (m *Manager) DescriptorAt(index int) (entities.ItemDescriptor, bool) {
	slot := m.slots.Get(index)
	if slot.IsEmpty() {
		return entities.ItemDescriptor{}, false
	}
	return m.catalog.Lookup(slot.ItemCode)
}

// addItem mutates without publishing and reports whether a slot changed
func (m *Manager) addItem(code, qty int) bool {
	mustPositive("item code", code)
	mustPositive("quantity", qty)

	index, ok := m.destinationFor(code)
	if !ok {
		slog.Debug("inventory full, add ignored",
			"save_id", m.saveID,
			"item_code", code,
			"quantity", qty)
		return false
	}

	m.addItemAtIndex(code, index, qty)
	return true
}

func (m *Manager) destinationFor(code int) (int, bool) {
	if index, ok := m.slots.FindIndexOf(code); ok {
		return index, true
	}
	return m.slots.FindFirstEmpty()
}

func (m *Manager) addItemAtIndex(code, index, qty int) {
	mustPositive("item code", code)
	mustPositive("quantity", qty)

	existing := m.slots.Get(index)
	m.slots.Set(index, entities.Slot{ItemCode: code, Quantity: existing.Quantity + qty})
}

// removeOneAtIndex reports whether the slot ended up empty
func (m *Manager) removeOneAtIndex(index int) bool {
	slot := m.slots.Get(index)
	if slot.Quantity-1 > 0 {
		m.slots.Set(index, entities.Slot{ItemCode: slot.ItemCode, Quantity: slot.Quantity - 1})
		return false
	}
	m.slots.Set(index, entities.EmptySlot())
	return true
}

func mustPositive(name string, value int) {
	if value <= 0 {
		panic(fmt.Sprintf("inventory: %s must be positive, got %d", name, value))
	}
}
