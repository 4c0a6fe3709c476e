// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/save"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/repositories/gamesave"
	gamesavemock "github.com/KirkDiggler/rpg-inventory/internal/repositories/gamesave/mock"
)

// ExpectSaveGet sets up a mock expectation for reading a save slot
func ExpectSaveGet(
	ctx any, mockRepo *gamesavemock.MockRepository,
	gameID string, gs *save.GameSave, err error,
) *gomock.Call {
	var out *gamesave.GetOutput
	if err == nil {
		out = &gamesave.GetOutput{Save: gs}
	}
	return mockRepo.EXPECT().
		Get(ctx, gamesave.GetInput{ID: gameID}).
		Return(out, err)
}

// ExpectSaveMissing sets up a mock expectation for a slot that was never written
func ExpectSaveMissing(ctx any, mockRepo *gamesavemock.MockRepository, gameID string) *gomock.Call {
	return ExpectSaveGet(ctx, mockRepo, gameID, nil, errors.NotFoundf("game save %s not found", gameID))
}

// ExpectSaveUpdate sets up a mock expectation for writing a slot. A nil err
// echoes the written save back.
func ExpectSaveUpdate(ctx any, mockRepo *gamesavemock.MockRepository, gameID string, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Cond(func(x any) bool {
			input, ok := x.(gamesave.UpdateInput)
			return ok && input.Save != nil && input.Save.ID == gameID
		})).
		DoAndReturn(func(_ context.Context, input gamesave.UpdateInput) (*gamesave.UpdateOutput, error) {
			if err != nil {
				return nil, err
			}
			return &gamesave.UpdateOutput{Save: input.Save}, nil
		})
}
