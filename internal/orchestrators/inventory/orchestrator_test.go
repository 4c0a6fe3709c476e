package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-inventory/internal/catalog"
	entities "github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/entities/save"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	inv "github.com/KirkDiggler/rpg-inventory/internal/inventory"
	invmock "github.com/KirkDiggler/rpg-inventory/internal/inventory/mock"
	"github.com/KirkDiggler/rpg-inventory/internal/orchestrators/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-inventory/internal/repositories/gamesave"
	"github.com/KirkDiggler/rpg-inventory/internal/savegame"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	remover *invmock.MockEntityRemover
	repo    *gamesave.InMemoryRepository
	catalog *catalog.Catalog
	manager *inv.Manager
	saves   *savegame.Manager
	svc     inventory.Service
	ctx     context.Context
	now     time.Time
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.remover = invmock.NewMockEntityRemover(s.ctrl)
	s.repo = gamesave.NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)

	cat, err := catalog.New([]entities.ItemDescriptor{
		{Code: 10, Category: entities.CategorySeed, Name: "Parsnip Seed"},
		{Code: 20, Category: entities.CategoryCommodity, Name: "Wood"},
		{Code: 30, Category: entities.CategoryHoeingTool, Name: "Hoe", IsStartingItem: true},
	})
	s.Require().NoError(err)
	s.catalog = cat

	s.manager, s.saves, s.svc = s.newSession(true)
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) newSession(grant bool) (*inv.Manager, *savegame.Manager, inventory.Service) {
	manager, err := inv.New(&inv.Config{
		Capacity:      4,
		Catalog:       s.catalog,
		SaveID:        "player_inventory",
		EntityRemover: s.remover,
		Clock:         &clock.Fixed{At: s.now},
	})
	s.Require().NoError(err)

	saves, err := savegame.New(&savegame.Config{Repository: s.repo, Clock: &clock.Fixed{At: s.now}})
	s.Require().NoError(err)
	s.Require().NoError(saves.Register(manager))

	svc, err := inventory.NewOrchestrator(&inventory.Config{
		Manager:            manager,
		Catalog:            s.catalog,
		Saves:              saves,
		DefaultGameID:      "default",
		GrantStartingItems: grant,
	})
	s.Require().NoError(err)

	return manager, saves, svc
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := inventory.NewOrchestrator(&inventory.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	for _, field := range []string{"Manager", "Catalog", "Saves", "DefaultGameID"} {
		s.Contains(err.Error(), field)
	}

	_, err = inventory.NewOrchestrator(nil)
	s.Require().Error(err)
}

func (s *OrchestratorTestSuite) TestInitializeFreshGrantsStartingItems() {
	out, err := s.svc.Initialize(s.ctx, &inventory.InitializeInput{})
	s.Require().NoError(err)

	s.False(out.Loaded)
	s.Equal(1, out.StartingItems)
	s.Equal(entities.Slot{ItemCode: 30, Quantity: 1}, out.Inventory.Slots[0])
	s.Equal(4, out.Inventory.Capacity)
	s.Equal("player_inventory", out.Inventory.SaveID)
}

func (s *OrchestratorTestSuite) TestInitializeFreshWithoutGrant() {
	_, _, svc := s.newSession(false)

	out, err := svc.Initialize(s.ctx, &inventory.InitializeInput{})
	s.Require().NoError(err)
	s.Zero(out.StartingItems)
	for _, slot := range out.Inventory.Slots {
		s.True(slot.IsEmpty())
	}
}

func (s *OrchestratorTestSuite) TestInitializeLoadsExistingSave() {
	gs := save.NewGameSave("default")
	obj := save.NewObjectSave()
	obj.Scenes[save.PersistentScene] = &save.SceneSave{
		Inventory: []entities.Slot{{ItemCode: 20, Quantity: 8}},
	}
	gs.Objects["player_inventory"] = obj
	_, err := s.repo.Update(s.ctx, gamesave.UpdateInput{Save: gs})
	s.Require().NoError(err)

	out, err := s.svc.Initialize(s.ctx, &inventory.InitializeInput{})
	s.Require().NoError(err)

	s.True(out.Loaded)
	s.Zero(out.StartingItems)
	s.Equal(entities.Slot{ItemCode: 20, Quantity: 8}, out.Inventory.Slots[0])
}

func (s *OrchestratorTestSuite) TestInitializeSaveWithoutInventoryStartsFresh() {
	testCases := []struct {
		name    string
		objects map[string]*save.ObjectSave
	}{
		{
			name:    "other objects only",
			objects: map[string]*save.ObjectSave{"chest_1": save.NewObjectSave()},
		},
		{
			name: "scene without slots",
			objects: map[string]*save.ObjectSave{"player_inventory": {
				Scenes: map[string]*save.SceneSave{save.PersistentScene: {}},
			}},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, _, svc := s.newSession(true)
			gs := save.NewGameSave("default")
			gs.Objects = tc.objects
			_, err := s.repo.Update(s.ctx, gamesave.UpdateInput{Save: gs})
			s.Require().NoError(err)

			out, err := svc.Initialize(s.ctx, &inventory.InitializeInput{})
			s.Require().NoError(err)

			s.False(out.Loaded)
			s.Equal(1, out.StartingItems)
			s.Equal(entities.Slot{ItemCode: 30, Quantity: 1}, out.Inventory.Slots[0])
		})
	}
}

func (s *OrchestratorTestSuite) TestAddItem() {
	out, err := s.svc.AddItem(s.ctx, &inventory.AddItemInput{ItemCode: 10, Quantity: 3})
	s.Require().NoError(err)
	s.True(out.Added)
	s.Equal(entities.Slot{ItemCode: 10, Quantity: 3}, out.Inventory.Slots[0])

	for code := 100; code < 103; code++ {
		_, err = s.svc.AddItem(s.ctx, &inventory.AddItemInput{ItemCode: code, Quantity: 1})
		s.Require().NoError(err)
	}

	out, err = s.svc.AddItem(s.ctx, &inventory.AddItemInput{ItemCode: 20, Quantity: 1})
	s.Require().NoError(err)
	s.False(out.Added)
}

func (s *OrchestratorTestSuite) TestInvalidArguments() {
	testCases := []struct {
		name    string
		call    func() error
		wantErr string
	}{
		{
			name: "add zero code",
			call: func() error {
				_, err := s.svc.AddItem(s.ctx, &inventory.AddItemInput{ItemCode: 0, Quantity: 1})
				return err
			},
			wantErr: "item_code",
		},
		{
			name: "add negative quantity",
			call: func() error {
				_, err := s.svc.AddItem(s.ctx, &inventory.AddItemInput{ItemCode: 10, Quantity: -2})
				return err
			},
			wantErr: "quantity",
		},
		{
			name: "pick up without source",
			call: func() error {
				_, err := s.svc.PickUpItem(s.ctx, &inventory.PickUpItemInput{ItemCode: 10, Quantity: 1})
				return err
			},
			wantErr: "source_id",
		},
		{
			name: "add at index out of range",
			call: func() error {
				_, err := s.svc.AddItemAtIndex(s.ctx, &inventory.AddItemAtIndexInput{ItemCode: 10, Index: 4, Quantity: 1})
				return err
			},
			wantErr: "index: must be between 0 and 3, got 4",
		},
		{
			name: "remove one negative index",
			call: func() error {
				_, err := s.svc.RemoveOne(s.ctx, &inventory.RemoveOneInput{Index: -1})
				return err
			},
			wantErr: "index",
		},
		{
			name: "remove all out of range",
			call: func() error {
				_, err := s.svc.RemoveAll(s.ctx, &inventory.RemoveAllInput{Index: 9})
				return err
			},
			wantErr: "index",
		},
		{
			name: "swap out of range",
			call: func() error {
				_, err := s.svc.SwapSlots(s.ctx, &inventory.SwapSlotsInput{From: 0, To: 4})
				return err
			},
			wantErr: "to",
		},
		{
			name: "select out of range",
			call: func() error {
				_, err := s.svc.SetSelection(s.ctx, &inventory.SetSelectionInput{ItemCode: 10, Index: 4})
				return err
			},
			wantErr: "index",
		},
		{
			name: "get item zero code",
			call: func() error {
				_, err := s.svc.GetItem(s.ctx, &inventory.GetItemInput{})
				return err
			},
			wantErr: "item_code",
		},
		{
			name: "list items unknown category",
			call: func() error {
				_, err := s.svc.ListItems(s.ctx, &inventory.ListItemsInput{Category: "weapon"})
				return err
			},
			wantErr: "weapon",
		},
		{
			name: "delete save without id",
			call: func() error {
				_, err := s.svc.DeleteSave(s.ctx, &inventory.DeleteSaveInput{})
				return err
			},
			wantErr: "game_id",
		},
		{
			name: "nil input",
			call: func() error {
				_, err := s.svc.GetInventory(s.ctx, nil)
				return err
			},
			wantErr: "input is required",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.wantErr)
		})
	}
}

func (s *OrchestratorTestSuite) TestPickUpItem() {
	s.remover.EXPECT().Destroy(&inventory.Pickup{ID: "drop_1", Type: "pickup"})

	out, err := s.svc.PickUpItem(s.ctx, &inventory.PickUpItemInput{
		ItemCode: 20,
		Quantity: 2,
		SourceID: "drop_1",
	})
	s.Require().NoError(err)
	s.True(out.Added)
	s.Equal(entities.Slot{ItemCode: 20, Quantity: 2}, out.Inventory.Slots[0])
}

func (s *OrchestratorTestSuite) TestSlotOperations() {
	_, err := s.svc.AddItemAtIndex(s.ctx, &inventory.AddItemAtIndexInput{ItemCode: 10, Index: 2, Quantity: 2})
	s.Require().NoError(err)

	swap, err := s.svc.SwapSlots(s.ctx, &inventory.SwapSlotsInput{From: 2, To: 0})
	s.Require().NoError(err)
	s.Equal(entities.Slot{ItemCode: 10, Quantity: 2}, swap.Inventory.Slots[0])

	one, err := s.svc.RemoveOne(s.ctx, &inventory.RemoveOneInput{Index: 0})
	s.Require().NoError(err)
	s.Equal(entities.Slot{ItemCode: 10, Quantity: 1}, one.Inventory.Slots[0])

	all, err := s.svc.RemoveAll(s.ctx, &inventory.RemoveAllInput{Index: 0})
	s.Require().NoError(err)
	s.Equal(entities.EmptySlot(), all.Inventory.Slots[0])
}

func (s *OrchestratorTestSuite) TestSelection() {
	_, err := s.svc.RemoveSelectedByOne(s.ctx, &inventory.RemoveSelectedByOneInput{})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.svc.AddItem(s.ctx, &inventory.AddItemInput{ItemCode: 20, Quantity: 2})
	s.Require().NoError(err)

	sel, err := s.svc.SetSelection(s.ctx, &inventory.SetSelectionInput{ItemCode: 20, Index: 0})
	s.Require().NoError(err)
	s.Equal(entities.Selection{ItemCode: 20, Index: 0}, sel.Selection)
	s.Require().NotNil(sel.Item)
	s.Equal("Wood", sel.Item.Name)

	out, err := s.svc.RemoveSelectedByOne(s.ctx, &inventory.RemoveSelectedByOneInput{})
	s.Require().NoError(err)
	s.Equal(1, out.Inventory.Slots[0].Quantity)

	cleared, err := s.svc.ClearSelection(s.ctx, &inventory.ClearSelectionInput{})
	s.Require().NoError(err)
	s.Equal(entities.NoneSelected(), cleared.Selection)

	sel, err = s.svc.SetSelection(s.ctx, &inventory.SetSelectionInput{ItemCode: 404, Index: 1})
	s.Require().NoError(err)
	s.Nil(sel.Item)
}

func (s *OrchestratorTestSuite) TestCatalogQueries() {
	item, err := s.svc.GetItem(s.ctx, &inventory.GetItemInput{ItemCode: 30})
	s.Require().NoError(err)
	s.Equal("Hoe", item.Item.Name)

	_, err = s.svc.GetItem(s.ctx, &inventory.GetItemInput{ItemCode: 31})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	all, err := s.svc.ListItems(s.ctx, &inventory.ListItemsInput{})
	s.Require().NoError(err)
	s.Len(all.Items, 3)
	s.Equal(10, all.Items[0].Code)

	tools, err := s.svc.ListItems(s.ctx, &inventory.ListItemsInput{Category: entities.CategoryHoeingTool})
	s.Require().NoError(err)
	s.Require().Len(tools.Items, 1)
	s.Equal(30, tools.Items[0].Code)
}

func (s *OrchestratorTestSuite) TestSaveAndLoad() {
	_, err := s.svc.AddItem(s.ctx, &inventory.AddItemInput{ItemCode: 10, Quantity: 5})
	s.Require().NoError(err)

	saved, err := s.svc.SaveGame(s.ctx, &inventory.SaveGameInput{GameID: "slot_a"})
	s.Require().NoError(err)
	s.Equal("slot_a", saved.GameID)
	s.Equal(s.now, saved.SavedAt)

	_, err = s.svc.RemoveAll(s.ctx, &inventory.RemoveAllInput{Index: 0})
	s.Require().NoError(err)

	loaded, err := s.svc.LoadGame(s.ctx, &inventory.LoadGameInput{GameID: "slot_a"})
	s.Require().NoError(err)
	s.Equal(entities.Slot{ItemCode: 10, Quantity: 5}, loaded.Inventory.Slots[0])

	s.Require().NoError(s.svc.Autosave(s.ctx))

	list, err := s.svc.ListSaves(s.ctx, &inventory.ListSavesInput{})
	s.Require().NoError(err)
	s.Equal([]string{"default", "slot_a"}, list.GameIDs)

	_, err = s.svc.DeleteSave(s.ctx, &inventory.DeleteSaveInput{GameID: "slot_a"})
	s.Require().NoError(err)

	_, err = s.svc.LoadGame(s.ctx, &inventory.LoadGameInput{GameID: "slot_a"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestSubscribe() {
	var events []*inv.ChangedEvent
	id := s.svc.Subscribe(func(e *inv.ChangedEvent) { events = append(events, e) })

	_, err := s.svc.AddItem(s.ctx, &inventory.AddItemInput{ItemCode: 10, Quantity: 1})
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal("player_inventory", events[0].SaveID)

	s.Require().NoError(s.svc.Unsubscribe(id))
	_, err = s.svc.AddItem(s.ctx, &inventory.AddItemInput{ItemCode: 10, Quantity: 1})
	s.Require().NoError(err)
	s.Len(events, 1)
}

func (s *OrchestratorTestSuite) TestConcurrentCallsAreSerialized() {
	s.remover.EXPECT().Destroy(gomock.Any()).AnyTimes()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_, _ = s.svc.AddItem(s.ctx, &inventory.AddItemInput{ItemCode: 10, Quantity: 1})
		}()
		go func() {
			defer wg.Done()
			_, _ = s.svc.PickUpItem(s.ctx, &inventory.PickUpItemInput{ItemCode: 10, Quantity: 1, SourceID: "drop"})
		}()
		go func() {
			defer wg.Done()
			_ = s.svc.Autosave(s.ctx)
		}()
	}
	wg.Wait()

	out, err := s.svc.GetInventory(s.ctx, &inventory.GetInventoryInput{})
	s.Require().NoError(err)
	s.Equal(entities.Slot{ItemCode: 10, Quantity: 100}, out.Inventory.Slots[0])
}
