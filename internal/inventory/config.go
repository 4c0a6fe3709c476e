// Package inventory implements the player inventory: stacking adds, removal,
// reordering, selection, change notification and save/restore.
//
// A Manager is owned by one caller and is not safe for concurrent use.
// Callers that reach it from several goroutines must serialize access.
package inventory

//go:generate mockgen -destination=mock/mock_collaborators.go -package=inventorymock github.com/KirkDiggler/rpg-inventory/internal/inventory Highlighter,EntityRemover

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-inventory/internal/catalog"
	entities "github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-inventory/internal/pkg/idgen"
)

// Highlighter is the UI affordance told to drop its highlight when the
// selected stack runs out
type Highlighter interface {
	ClearHighlight()
}

// EntityRemover removes picked-up objects from the world
type EntityRemover interface {
	Destroy(entity core.Entity)
}

// Config holds the dependencies for a Manager
type Config struct {
	// Capacity fixes the number of slots for the life of the manager
	Capacity int
	Catalog  *catalog.Catalog
	// SaveID keys this inventory in game saves and must not change between runs
	SaveID   string
	Location entities.Location

	// Optional collaborators
	Highlighter   Highlighter
	EntityRemover EntityRemover
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required fields are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidatePositive("Capacity", c.Capacity, vb)
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	errors.ValidateRequired("SaveID", c.SaveID, vb)
	if c.Location != "" && !c.Location.IsValid() {
		vb.Fieldf("Location", "unknown location %q", c.Location)
	}

	return vb.Build()
}
