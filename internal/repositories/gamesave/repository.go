// Package gamesave provides persistence for game save slots
package gamesave

//go:generate mockgen -destination=mock/mock_repository.go -package=gamesavemock github.com/KirkDiggler/rpg-inventory/internal/repositories/gamesave Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/save"
)

// Repository defines the interface for game save persistence
type Repository interface {
	// Get retrieves a save slot
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the slot has never been written
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update writes a save slot, creating it if needed
	// Returns errors.InvalidArgument for a nil save or empty ID
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a save slot
	// Returns errors.NotFound if the slot does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns the IDs of every stored slot in ascending order
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// GetInput defines the input for getting a save
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a save
type GetOutput struct {
	Save *save.GameSave
}

// UpdateInput defines the input for writing a save
type UpdateInput struct {
	Save *save.GameSave
}

// UpdateOutput defines the output for writing a save
type UpdateOutput struct {
	Save *save.GameSave
}

// DeleteInput defines the input for deleting a save
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a save
type DeleteOutput struct{}

// ListInput defines the input for listing saves
type ListInput struct{}

// ListOutput defines the output for listing saves
type ListOutput struct {
	IDs []string
}
