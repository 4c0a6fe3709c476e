// Package inventory contains the data model for a slot-based player inventory
package inventory

import "fmt"

const (
	// EmptyItemCode marks a slot that holds nothing. It is never a catalog code.
	EmptyItemCode = 0

	// NoSelection is the value of both selection fields when nothing is selected
	NoSelection = -1
)

// ItemDescriptor is the static, catalog-defined description of an item kind
type ItemDescriptor struct {
	Code            int          `json:"code" yaml:"code" jsonschema:"minimum=1"`
	Category        ItemCategory `json:"category" yaml:"category" jsonschema:"enum=seed,enum=commodity,enum=watering_tool,enum=hoeing_tool,enum=chopping_tool,enum=breaking_tool,enum=reaping_tool,enum=collecting_tool,enum=reapable_scenery,enum=furniture,enum=none"`
	Name            string       `json:"name" yaml:"name"`
	Description     string       `json:"description,omitempty" yaml:"description,omitempty"`
	LongDescription string       `json:"long_description,omitempty" yaml:"long_description,omitempty"`
	Sprite          string       `json:"sprite,omitempty" yaml:"sprite,omitempty"`
	UseGridRadius   int          `json:"use_grid_radius,omitempty" yaml:"use_grid_radius,omitempty"`
	UseRadius       float64      `json:"use_radius,omitempty" yaml:"use_radius,omitempty"`
	IsStartingItem  bool         `json:"is_starting_item,omitempty" yaml:"is_starting_item,omitempty"`
	CanBePickedUp   bool         `json:"can_be_picked_up,omitempty" yaml:"can_be_picked_up,omitempty"`
	CanBeDropped    bool         `json:"can_be_dropped,omitempty" yaml:"can_be_dropped,omitempty"`
	CanBeEaten      bool         `json:"can_be_eaten,omitempty" yaml:"can_be_eaten,omitempty"`
	CanBeCarried    bool         `json:"can_be_carried,omitempty" yaml:"can_be_carried,omitempty"`
}

// Slot is one inventory storage unit
type Slot struct {
	ItemCode int `json:"item_code"`
	Quantity int `json:"quantity"`
}

// EmptySlot returns the empty sentinel slot
func EmptySlot() Slot {
	return Slot{ItemCode: EmptyItemCode, Quantity: 0}
}

// IsEmpty reports whether the slot holds nothing
func (s Slot) IsEmpty() bool {
	return s.ItemCode == EmptyItemCode
}

// IsValid checks the empty-sentinel invariant: code 0 if and only if quantity 0,
// and quantity never negative
func (s Slot) IsValid() bool {
	if s.Quantity < 0 || s.ItemCode < 0 {
		return false
	}
	return (s.ItemCode == EmptyItemCode) == (s.Quantity == 0)
}

// Selection points at the slot the player has made active.
// It is advisory and is not kept in sync with slot contents.
type Selection struct {
	ItemCode int `json:"item_code"`
	Index    int `json:"index"`
}

// NoneSelected returns a selection with both fields cleared
func NoneSelected() Selection {
	return Selection{ItemCode: NoSelection, Index: NoSelection}
}

// IsSelected reports whether a slot index is selected
func (s Selection) IsSelected() bool {
	return s.Index != NoSelection
}

// SlotList is a fixed-length ordered sequence of slots.
// Its length is set at construction and never changes.
type SlotList struct {
	slots []Slot
}

// NewSlotList creates a list of capacity empty slots
func NewSlotList(capacity int) *SlotList {
	if capacity < 0 {
		panic(fmt.Sprintf("inventory: negative capacity %d", capacity))
	}
	return &SlotList{slots: make([]Slot, capacity)}
}

// SlotListFrom creates a list holding a copy of slots
func SlotListFrom(slots []Slot) *SlotList {
	list := &SlotList{slots: make([]Slot, len(slots))}
	copy(list.slots, slots)
	return list
}

// Len returns the fixed capacity of the list
func (l *SlotList) Len() int {
	return len(l.slots)
}

// Get returns the slot at index. Panics when index is out of range.
func (l *SlotList) Get(index int) Slot {
	l.mustInRange(index)
	return l.slots[index]
}

// Set replaces the slot at index. Panics when index is out of range.
func (l *SlotList) Set(index int, slot Slot) {
	l.mustInRange(index)
	l.slots[index] = slot
}

// FindIndexOf returns the first index holding itemCode.
// Searching for EmptyItemCode never matches.
func (l *SlotList) FindIndexOf(itemCode int) (int, bool) {
	if itemCode == EmptyItemCode {
		return NoSelection, false
	}
	for i, slot := range l.slots {
		if slot.ItemCode == itemCode {
			return i, true
		}
	}
	return NoSelection, false
}

// FindFirstEmpty returns the first empty index, false when the list is full
func (l *SlotList) FindFirstEmpty() (int, bool) {
	for i, slot := range l.slots {
		if slot.ItemCode == EmptyItemCode {
			return i, true
		}
	}
	return NoSelection, false
}

// IsFull reports whether no empty slot remains
func (l *SlotList) IsFull() bool {
	_, ok := l.FindFirstEmpty()
	return !ok
}

// Slots returns a copy of the slots
func (l *SlotList) Slots() []Slot {
	out := make([]Slot, len(l.slots))
	copy(out, l.slots)
	return out
}

// Clone returns an independent copy of the list
func (l *SlotList) Clone() *SlotList {
	return SlotListFrom(l.slots)
}

func (l *SlotList) mustInRange(index int) {
	if index < 0 || index >= len(l.slots) {
		panic(fmt.Sprintf("inventory: slot index %d out of range [0,%d)", index, len(l.slots)))
	}
}
