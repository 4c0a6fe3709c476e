package savegame

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/save"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-inventory/internal/repositories/gamesave"
)

// Config holds the dependencies for the save manager
type Config struct {
	Repository gamesave.Repository
	Clock      clock.Clock
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}

	return vb.Build()
}

// Manager keeps the registry of saveables and moves their state in and out
// of the repository. Saveables are visited in registration order.
type Manager struct {
	repo  gamesave.Repository
	clock clock.Clock

	mu        sync.Mutex
	saveables map[string]Saveable
	order     []string
}

// New creates a save manager
func New(cfg *Config) (*Manager, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &Manager{
		repo:      cfg.Repository,
		clock:     clk,
		saveables: make(map[string]Saveable),
	}, nil
}

// Register adds s to the registry
func (m *Manager) Register(s Saveable) error {
	if s == nil {
		return errors.InvalidArgument("saveable is required")
	}
	id := s.SaveID()
	if id == "" {
		return errors.InvalidArgument("saveable must have a save ID")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.saveables[id]; exists {
		return errors.AlreadyExistsf("saveable %q already registered", id).WithMeta("save_id", id)
	}
	m.saveables[id] = s
	m.order = append(m.order, id)

	slog.Debug("saveable registered", "save_id", id)
	return nil
}

// Deregister removes the saveable with saveID from the registry
func (m *Manager) Deregister(saveID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.saveables[saveID]; !exists {
		return errors.NotFoundf("saveable %q not registered", saveID).WithMeta("save_id", saveID)
	}
	delete(m.saveables, saveID)
	for i, id := range m.order {
		if id == saveID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	slog.Debug("saveable deregistered", "save_id", saveID)
	return nil
}

// Registered returns the registered save IDs in registration order
func (m *Manager) Registered() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// SaveGame writes every registered saveable into the slot gameID.
// Entries in an existing slot for objects that are not registered are kept.
func (m *Manager) SaveGame(ctx context.Context, gameID string) (*save.GameSave, error) {
	if gameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}

	gs, err := m.existingOrNew(ctx, gameID)
	if err != nil {
		return nil, err
	}

	for _, s := range m.snapshot() {
		obj, err := s.Save()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to save %s", s.SaveID())
		}
		if obj == nil {
			continue
		}
		gs.Objects[s.SaveID()] = obj
	}
	gs.SavedAt = m.clock.Now()

	if _, err := m.repo.Update(ctx, gamesave.UpdateInput{Save: gs}); err != nil {
		return nil, errors.Wrapf(err, "failed to write game save %s", gameID)
	}

	slog.InfoContext(ctx, "game saved",
		"game_id", gameID,
		"objects", len(gs.Objects))

	return gs, nil
}

// LoadGame reads the slot gameID and hands it to every registered saveable
// in registration order. Returns errors.NotFound when the slot has never been
// written. Loading stops at the first saveable that fails; saveables before
// it keep the state they already restored.
func (m *Manager) LoadGame(ctx context.Context, gameID string) (*save.GameSave, error) {
	if gameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}

	out, err := m.repo.Get(ctx, gamesave.GetInput{ID: gameID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read game save %s", gameID)
	}
	gs := out.Save
	if gs.Objects == nil {
		gs.Objects = make(map[string]*save.ObjectSave)
	}

	for _, s := range m.snapshot() {
		if err := s.Load(gs); err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", s.SaveID())
		}
	}

	slog.InfoContext(ctx, "game loaded",
		"game_id", gameID,
		"saved_at", gs.SavedAt)

	return gs, nil
}

// DeleteGame removes the slot gameID
func (m *Manager) DeleteGame(ctx context.Context, gameID string) error {
	if _, err := m.repo.Delete(ctx, gamesave.DeleteInput{ID: gameID}); err != nil {
		return errors.Wrapf(err, "failed to delete game save %s", gameID)
	}
	return nil
}

// ListGames returns the IDs of every stored slot
func (m *Manager) ListGames(ctx context.Context) ([]string, error) {
	out, err := m.repo.List(ctx, gamesave.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list game saves")
	}
	return out.IDs, nil
}

// StoreScene tells every saveable that scene is being left
func (m *Manager) StoreScene(scene string) {
	for _, s := range m.snapshot() {
		s.StoreScene(scene)
	}
}

// RestoreScene tells every saveable that scene has been entered
func (m *Manager) RestoreScene(scene string) {
	for _, s := range m.snapshot() {
		s.RestoreScene(scene)
	}
}

func (m *Manager) existingOrNew(ctx context.Context, gameID string) (*save.GameSave, error) {
	out, err := m.repo.Get(ctx, gamesave.GetInput{ID: gameID})
	if err != nil {
		if errors.IsNotFound(err) {
			return save.NewGameSave(gameID), nil
		}
		return nil, errors.Wrapf(err, "failed to read game save %s", gameID)
	}

	gs := out.Save
	if gs.Objects == nil {
		gs.Objects = make(map[string]*save.ObjectSave)
	}
	return gs, nil
}

// snapshot copies the registry so saveables run without m.mu held
func (m *Manager) snapshot() []Saveable {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Saveable, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.saveables[id])
	}
	return out
}
