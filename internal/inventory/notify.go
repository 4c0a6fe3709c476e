package inventory

import (
	entities "github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

// ChangedEvent carries the slot list as it stands after a mutation
type ChangedEvent struct {
	SaveID   string
	Location entities.Location
	// Slots is a copy; subscribers may keep or modify it
	Slots []entities.Slot
}

// Subscriber receives change events. It runs synchronously inside the
// mutating call and must not call back into the manager.
type Subscriber func(event *ChangedEvent)

type subscription struct {
	id string
	fn Subscriber
}

// Subscribe registers fn and returns an ID for Unsubscribe. Subscribers are
// called in registration order.
func (m *Manager) Subscribe(fn Subscriber) string {
	if fn == nil {
		panic("inventory: nil subscriber")
	}

	id := m.idGen.Generate()
	m.subscribers = append(m.subscribers, subscription{id: id, fn: fn})
	return id
}

// Unsubscribe removes a subscriber
func (m *Manager) Unsubscribe(id string) error {
	for i, sub := range m.subscribers {
		if sub.id == id {
			m.subscribers = append(m.subscribers[:i:i], m.subscribers[i+1:]...)
			return nil
		}
	}
	return errors.NotFoundf("subscription %s not found", id).WithMeta("subscription_id", id)
}

func (m *Manager) publish() {
	if len(m.subscribers) == 0 {
		return
	}

	subs := m.subscribers
	for _, sub := range subs {
		sub.fn(&ChangedEvent{
			SaveID:   m.saveID,
			Location: m.location,
			Slots:    m.slots.Slots(),
		})
	}
}
