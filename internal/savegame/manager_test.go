package savegame_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/entities/save"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-inventory/internal/repositories/gamesave"
	gamesavemock "github.com/KirkDiggler/rpg-inventory/internal/repositories/gamesave/mock"
	"github.com/KirkDiggler/rpg-inventory/internal/savegame"
	savegamemock "github.com/KirkDiggler/rpg-inventory/internal/savegame/mock"
	"github.com/KirkDiggler/rpg-inventory/internal/testutils/mocks"
)

type ManagerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *gamesave.InMemoryRepository
	now     time.Time
	manager *savegame.Manager
	ctx     context.Context
}

func (s *ManagerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = gamesave.NewInMemory()
	s.now = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	manager, err := savegame.New(&savegame.Config{
		Repository: s.repo,
		Clock:      &clock.Fixed{At: s.now},
	})
	s.Require().NoError(err)
	s.manager = manager
	s.ctx = context.Background()
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func (s *ManagerTestSuite) newSaveable(id string) *savegamemock.MockSaveable {
	m := savegamemock.NewMockSaveable(s.ctrl)
	m.EXPECT().SaveID().Return(id).AnyTimes()
	return m
}

func objectWith(slots ...inventory.Slot) *save.ObjectSave {
	obj := save.NewObjectSave()
	obj.Scenes[save.PersistentScene] = &save.SceneSave{Inventory: slots}
	return obj
}

func (s *ManagerTestSuite) TestNewRequiresRepository() {
	_, err := savegame.New(&savegame.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Repository")

	_, err = savegame.New(nil)
	s.Require().Error(err)
}

func (s *ManagerTestSuite) TestRegister() {
	first := s.newSaveable("player_inventory")
	s.Require().NoError(s.manager.Register(first))

	dup := s.newSaveable("player_inventory")
	err := s.manager.Register(dup)
	s.Require().Error(err)
	s.Equal(errors.CodeAlreadyExists, errors.GetCode(err))

	blank := s.newSaveable("")
	err = s.manager.Register(blank)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	s.Require().NoError(s.manager.Register(s.newSaveable("chest_1")))
	s.Equal([]string{"player_inventory", "chest_1"}, s.manager.Registered())
}

func (s *ManagerTestSuite) TestDeregister() {
	s.Require().NoError(s.manager.Register(s.newSaveable("a")))
	s.Require().NoError(s.manager.Register(s.newSaveable("b")))

	s.Require().NoError(s.manager.Deregister("a"))
	s.Equal([]string{"b"}, s.manager.Registered())

	err := s.manager.Deregister("a")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *ManagerTestSuite) TestSaveGameWritesEveryObject() {
	inv := s.newSaveable("player_inventory")
	inv.EXPECT().Save().Return(objectWith(inventory.Slot{ItemCode: 7, Quantity: 2}), nil)
	chest := s.newSaveable("chest_1")
	chest.EXPECT().Save().Return(objectWith(inventory.EmptySlot()), nil)

	s.Require().NoError(s.manager.Register(inv))
	s.Require().NoError(s.manager.Register(chest))

	gs, err := s.manager.SaveGame(s.ctx, "slot_1")
	s.Require().NoError(err)
	s.Equal(s.now, gs.SavedAt)
	s.Len(gs.Objects, 2)

	stored, err := s.repo.Get(s.ctx, gamesave.GetInput{ID: "slot_1"})
	s.Require().NoError(err)
	scene, ok := stored.Save.Scene("player_inventory", save.PersistentScene)
	s.Require().True(ok)
	s.Equal([]inventory.Slot{{ItemCode: 7, Quantity: 2}}, scene.Inventory)
}

func (s *ManagerTestSuite) TestSaveGameKeepsUnregisteredObjects() {
	existing := save.NewGameSave("slot_1")
	existing.Objects["chest_1"] = objectWith(inventory.Slot{ItemCode: 3, Quantity: 3})
	_, err := s.repo.Update(s.ctx, gamesave.UpdateInput{Save: existing})
	s.Require().NoError(err)

	inv := s.newSaveable("player_inventory")
	inv.EXPECT().Save().Return(objectWith(inventory.Slot{ItemCode: 7, Quantity: 2}), nil)
	s.Require().NoError(s.manager.Register(inv))

	gs, err := s.manager.SaveGame(s.ctx, "slot_1")
	s.Require().NoError(err)
	s.Contains(gs.Objects, "chest_1")
	s.Contains(gs.Objects, "player_inventory")
}

func (s *ManagerTestSuite) TestSaveGameSaveableError() {
	inv := s.newSaveable("player_inventory")
	inv.EXPECT().Save().Return(nil, errors.Internal("boom"))
	s.Require().NoError(s.manager.Register(inv))

	_, err := s.manager.SaveGame(s.ctx, "slot_1")
	s.Require().Error(err)
	s.Contains(err.Error(), "player_inventory")

	_, err = s.repo.Get(s.ctx, gamesave.GetInput{ID: "slot_1"})
	s.True(errors.IsNotFound(err))
}

func (s *ManagerTestSuite) TestSaveGameRepositoryError() {
	repo := gamesavemock.NewMockRepository(s.ctrl)
	manager, err := savegame.New(&savegame.Config{Repository: repo})
	s.Require().NoError(err)

	mocks.ExpectSaveMissing(gomock.Any(), repo, "slot_1")
	mocks.ExpectSaveUpdate(gomock.Any(), repo, "slot_1", errors.Unavailable("redis down"))

	_, err = manager.SaveGame(s.ctx, "slot_1")
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *ManagerTestSuite) TestSaveGameReadError() {
	repo := gamesavemock.NewMockRepository(s.ctrl)
	manager, err := savegame.New(&savegame.Config{Repository: repo})
	s.Require().NoError(err)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, stderrors.New("connection reset"))

	_, err = manager.SaveGame(s.ctx, "slot_1")
	s.Require().Error(err)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
}

func (s *ManagerTestSuite) TestLoadGame() {
	existing := save.NewGameSave("slot_1")
	existing.Objects["player_inventory"] = objectWith(inventory.Slot{ItemCode: 7, Quantity: 2})
	_, err := s.repo.Update(s.ctx, gamesave.UpdateInput{Save: existing})
	s.Require().NoError(err)

	inv := s.newSaveable("player_inventory")
	chest := s.newSaveable("chest_1")
	gomock.InOrder(
		inv.EXPECT().Load(gomock.Any()).DoAndReturn(func(gs *save.GameSave) error {
			scene, ok := gs.Scene("player_inventory", save.PersistentScene)
			s.Require().True(ok)
			s.Equal([]inventory.Slot{{ItemCode: 7, Quantity: 2}}, scene.Inventory)
			return nil
		}),
		chest.EXPECT().Load(gomock.Any()).Return(nil),
	)

	s.Require().NoError(s.manager.Register(inv))
	s.Require().NoError(s.manager.Register(chest))

	gs, err := s.manager.LoadGame(s.ctx, "slot_1")
	s.Require().NoError(err)
	s.Equal("slot_1", gs.ID)
}

func (s *ManagerTestSuite) TestLoadGameMissingSlot() {
	s.Require().NoError(s.manager.Register(s.newSaveable("player_inventory")))

	_, err := s.manager.LoadGame(s.ctx, "never_saved")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *ManagerTestSuite) TestLoadGameSaveableError() {
	_, err := s.repo.Update(s.ctx, gamesave.UpdateInput{Save: save.NewGameSave("slot_1")})
	s.Require().NoError(err)

	inv := s.newSaveable("player_inventory")
	inv.EXPECT().Load(gomock.Any()).Return(errors.DataLoss("bad slot"))
	s.Require().NoError(s.manager.Register(inv))

	_, err = s.manager.LoadGame(s.ctx, "slot_1")
	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))
}

func (s *ManagerTestSuite) TestLoadGameStopsAtFirstFailure() {
	_, err := s.repo.Update(s.ctx, gamesave.UpdateInput{Save: save.NewGameSave("slot_1")})
	s.Require().NoError(err)

	first := s.newSaveable("player_inventory")
	failing := s.newSaveable("chest_1")
	last := s.newSaveable("chest_2")
	gomock.InOrder(
		first.EXPECT().Load(gomock.Any()).Return(nil),
		failing.EXPECT().Load(gomock.Any()).Return(errors.DataLoss("bad slot")),
	)
	last.EXPECT().Load(gomock.Any()).Times(0)

	for _, saveable := range []*savegamemock.MockSaveable{first, failing, last} {
		s.Require().NoError(s.manager.Register(saveable))
	}

	_, err = s.manager.LoadGame(s.ctx, "slot_1")
	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))
	s.Contains(err.Error(), "chest_1")
}

func (s *ManagerTestSuite) TestSceneFanOut() {
	a := s.newSaveable("a")
	b := s.newSaveable("b")
	gomock.InOrder(
		a.EXPECT().StoreScene("Farm"),
		b.EXPECT().StoreScene("Farm"),
		a.EXPECT().RestoreScene("Town"),
		b.EXPECT().RestoreScene("Town"),
	)
	s.Require().NoError(s.manager.Register(a))
	s.Require().NoError(s.manager.Register(b))

	s.manager.StoreScene("Farm")
	s.manager.RestoreScene("Town")
}

func (s *ManagerTestSuite) TestListAndDeleteGames() {
	for _, id := range []string{"slot_2", "slot_1"} {
		_, err := s.manager.SaveGame(s.ctx, id)
		s.Require().NoError(err)
	}

	ids, err := s.manager.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"slot_1", "slot_2"}, ids)

	s.Require().NoError(s.manager.DeleteGame(s.ctx, "slot_1"))
	err = s.manager.DeleteGame(s.ctx, "slot_1")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}
