package inventory

import (
	"log/slog"
	"time"

	entities "github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/entities/save"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/savegame"
)

// Snapshot is a captured copy of the slot list
type Snapshot struct {
	SaveID     string
	Scope      string
	Slots      []entities.Slot
	CapturedAt time.Time
}

// Capture copies the slot list into a snapshot for the persistent scope.
// Selection is not captured.
func (m *Manager) Capture() *Snapshot {
	return &Snapshot{
		SaveID:     m.saveID,
		Scope:      savegame.PersistentScene,
		Slots:      m.slots.Slots(),
		CapturedAt: m.clock.Now(),
	}
}

// Restore replaces the slot list with the snapshot's slots and publishes.
// A nil snapshot means nothing was saved and leaves the inventory untouched.
//
// A snapshot shorter than the capacity is padded with empty slots. A longer
// one is trimmed when only empty slots would be dropped and rejected with
// errors.FailedPrecondition otherwise. Slots that break the empty-sentinel
// rule are rejected with errors.DataLoss. The selection is left as is.
func (m *Manager) Restore(snapshot *Snapshot) error {
	if snapshot == nil {
		return nil
	}
	if snapshot.SaveID != "" && snapshot.SaveID != m.saveID {
		return errors.InvalidArgumentf("snapshot belongs to %q, not %q", snapshot.SaveID, m.saveID).
			WithMeta("save_id", m.saveID)
	}

	for i, slot := range snapshot.Slots {
		if !slot.IsValid() {
			return errors.DataLossf("slot %d is corrupt (code %d, quantity %d)", i, slot.ItemCode, slot.Quantity).
				WithMeta("save_id", m.saveID).
				WithMeta("index", i)
		}
	}

	list, err := fitToCapacity(snapshot.Slots, m.slots.Len())
	if err != nil {
		return errors.Wrapf(err, "cannot restore inventory %s", m.saveID)
	}

	if len(snapshot.Slots) != list.Len() {
		slog.Info("restored inventory resized to capacity",
			"save_id", m.saveID,
			"saved_slots", len(snapshot.Slots),
			"capacity", list.Len())
	}

	m.slots = list
	m.publish()
	return nil
}

func fitToCapacity(slots []entities.Slot, capacity int) (*entities.SlotList, error) {
	if len(slots) <= capacity {
		list := entities.NewSlotList(capacity)
		for i, slot := range slots {
			list.Set(i, slot)
		}
		return list, nil
	}

	for i := capacity; i < len(slots); i++ {
		if !slots[i].IsEmpty() {
			return nil, errors.FailedPreconditionf(
				"saved slot %d holds item %d but capacity is %d", i, slots[i].ItemCode, capacity).
				WithMeta("capacity", capacity).
				WithMeta("saved_slots", len(slots))
		}
	}
	return entities.SlotListFrom(slots[:capacity]), nil
}

var _ savegame.Saveable = (*Manager)(nil)

// SaveID returns the stable key for this inventory in game saves
func (m *Manager) SaveID() string {
	return m.saveID
}

// Save stores the captured slot list under the persistent scope
func (m *Manager) Save() (*save.ObjectSave, error) {
	snap := m.Capture()

	obj := save.NewObjectSave()
	obj.Scenes[snap.Scope] = &save.SceneSave{
		Inventory:  snap.Slots,
		CapturedAt: snap.CapturedAt,
	}
	return obj, nil
}

// HasSave reports whether gs holds inventory slots for this inventory.
// A scene entry without slots does not count.
func (m *Manager) HasSave(gs *save.GameSave) bool {
	scene, ok := gs.Scene(m.saveID, savegame.PersistentScene)
	return ok && scene.Inventory != nil
}

// Load restores from gs when it holds slots for this inventory
func (m *Manager) Load(gs *save.GameSave) error {
	if !m.HasSave(gs) {
		slog.Debug("no saved inventory, keeping current state", "save_id", m.saveID)
		return nil
	}
	scene, _ := gs.Scene(m.saveID, savegame.PersistentScene)

	return m.Restore(&Snapshot{
		SaveID:     m.saveID,
		Scope:      savegame.PersistentScene,
		Slots:      scene.Inventory,
		CapturedAt: scene.CapturedAt,
	})
}

// StoreScene does nothing; the inventory lives in the persistent scope
func (m *Manager) StoreScene(string) {}

// RestoreScene does nothing; the inventory lives in the persistent scope
func (m *Manager) RestoreScene(string) {}
