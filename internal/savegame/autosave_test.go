package savegame_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/savegame"
)

func TestAutosaverConfigValidate(t *testing.T) {
	noop := func(context.Context) error { return nil }

	testCases := []struct {
		name    string
		cfg     *savegame.AutosaverConfig
		wantErr string
	}{
		{name: "descriptor", cfg: &savegame.AutosaverConfig{Schedule: "@every 5m", Save: noop}},
		{name: "cron expression", cfg: &savegame.AutosaverConfig{Schedule: "*/10 * * * *", Save: noop}},
		{name: "missing schedule", cfg: &savegame.AutosaverConfig{Save: noop}, wantErr: "Schedule"},
		{name: "bad schedule", cfg: &savegame.AutosaverConfig{Schedule: "every so often", Save: noop}, wantErr: "invalid cron expression"},
		{name: "missing save", cfg: &savegame.AutosaverConfig{Schedule: "@hourly"}, wantErr: "Save"},
		{name: "negative timeout", cfg: &savegame.AutosaverConfig{Schedule: "@hourly", Save: noop, Timeout: -time.Second}, wantErr: "Timeout"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestAutosaverNext(t *testing.T) {
	a, err := savegame.NewAutosaver(&savegame.AutosaverConfig{
		Schedule: "@every 5m",
		Save:     func(context.Context) error { return nil },
	})
	require.NoError(t, err)

	base := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, base.Add(5*time.Minute), a.Next(base))
}

func TestAutosaverRunOnce(t *testing.T) {
	calls := 0
	a, err := savegame.NewAutosaver(&savegame.AutosaverConfig{
		Schedule: "@hourly",
		Timeout:  time.Second,
		Save: func(ctx context.Context) error {
			calls++
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			if calls > 1 {
				return errors.Unavailable("store offline")
			}
			return nil
		},
	})
	require.NoError(t, err)

	require.NoError(t, a.RunOnce(context.Background()))

	err = a.RunOnce(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnavailable, errors.GetCode(err))
	assert.Equal(t, 2, calls)
}

func TestAutosaverStartStop(t *testing.T) {
	a, err := savegame.NewAutosaver(&savegame.AutosaverConfig{
		Schedule: "@hourly",
		Save:     func(context.Context) error { return nil },
	})
	require.NoError(t, err)

	a.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	a.Stop(ctx)
}
