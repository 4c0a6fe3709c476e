package v1alpha1

import (
	entities "github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/orchestrators/inventory"
)

func convertState(state *inventory.State) *Inventory {
	if state == nil {
		return nil
	}

	slots := make([]Slot, len(state.Slots))
	for i, slot := range state.Slots {
		slots[i] = Slot{ItemCode: slot.ItemCode, Quantity: slot.Quantity}
	}

	return &Inventory{
		SaveID:    state.SaveID,
		Location:  string(state.Location),
		Capacity:  state.Capacity,
		Slots:     slots,
		Selection: convertSelection(state.Selection),
	}
}

func convertSelection(sel entities.Selection) Selection {
	return Selection{ItemCode: sel.ItemCode, Index: sel.Index}
}

func convertItem(desc entities.ItemDescriptor) *Item {
	return &Item{
		Code:            desc.Code,
		Category:        desc.Category.String(),
		Name:            desc.Name,
		Description:     desc.Description,
		LongDescription: desc.LongDescription,
		Sprite:          desc.Sprite,
		UseGridRadius:   desc.UseGridRadius,
		UseRadius:       desc.UseRadius,
		IsStartingItem:  desc.IsStartingItem,
		CanBePickedUp:   desc.CanBePickedUp,
		CanBeDropped:    desc.CanBeDropped,
		CanBeEaten:      desc.CanBeEaten,
		CanBeCarried:    desc.CanBeCarried,
	}
}
