package client

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/KirkDiggler/rpg-inventory/internal/handlers/inventory/v1alpha1"
)

var out io.Writer = os.Stdout

func printInventory(inv *v1alpha1.Inventory) {
	if inv == nil {
		fmt.Fprintln(out, "(no inventory)")
		return
	}

	fmt.Fprintf(out, "🎒 Inventory %s (%s), %d slots\n\n", inv.SaveID, inv.Location, inv.Capacity)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tITEM\tQTY\t")
	for i, slot := range inv.Slots {
		marker := ""
		if i == inv.Selection.Index {
			marker = "*"
		}
		if slot.ItemCode == 0 {
			fmt.Fprintf(tw, "%d\t-\t\t%s\n", i, marker)
			continue
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\n", i, slot.ItemCode, slot.Quantity, marker)
	}
	_ = tw.Flush()

	printSelection(inv.Selection)
}

func printSelection(sel v1alpha1.Selection) {
	if sel.Index < 0 {
		fmt.Fprintln(out, "\nSelection: none")
		return
	}
	fmt.Fprintf(out, "\nSelection: slot %d (item %d)\n", sel.Index, sel.ItemCode)
}

func printItem(item *v1alpha1.Item) {
	if item == nil {
		return
	}

	fmt.Fprintf(out, "%d %s [%s]\n", item.Code, item.Name, item.Category)
	if item.Description != "" {
		fmt.Fprintf(out, "  %s\n", item.Description)
	}
	if item.LongDescription != "" {
		fmt.Fprintf(out, "  %s\n", item.LongDescription)
	}
	if item.UseGridRadius > 0 || item.UseRadius > 0 {
		fmt.Fprintf(out, "  use radius: %d cells, %.2f units\n", item.UseGridRadius, item.UseRadius)
	}
	fmt.Fprintf(out, "  starting: %v  pick up: %v  drop: %v  eat: %v  carry: %v\n",
		item.IsStartingItem, item.CanBePickedUp, item.CanBeDropped, item.CanBeEaten, item.CanBeCarried)
}
