package savegame

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

const defaultAutosaveTimeout = 10 * time.Second

// SaveFunc performs one save. The caller decides which slot and how state is
// kept consistent while it runs.
type SaveFunc func(ctx context.Context) error

// AutosaverConfig configures periodic saving
type AutosaverConfig struct {
	// Schedule is a five-field cron expression or a descriptor such as "@every 5m"
	Schedule string
	Save     SaveFunc
	// Timeout bounds a single save; defaults to 10s
	Timeout time.Duration
}

// Validate ensures the schedule parses and a save function is set
func (c *AutosaverConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Schedule == "" {
		vb.RequiredField("Schedule")
	} else if _, err := scheduleParser.Parse(c.Schedule); err != nil {
		vb.Fieldf("Schedule", "invalid cron expression %q: %v", c.Schedule, err)
	}
	if c.Save == nil {
		vb.RequiredField("Save")
	}
	if c.Timeout < 0 {
		vb.Field("Timeout", "must not be negative")
	}

	return vb.Build()
}

var scheduleParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Autosaver runs a SaveFunc on a cron schedule. A run that is still in
// progress when the next one fires causes that tick to be skipped.
type Autosaver struct {
	cron     *cron.Cron
	schedule cron.Schedule
	save     SaveFunc
	timeout  time.Duration
}

// NewAutosaver creates an autosaver. It does nothing until Start.
func NewAutosaver(cfg *AutosaverConfig) (*Autosaver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	sched, err := scheduleParser.Parse(cfg.Schedule)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid schedule")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultAutosaveTimeout
	}

	a := &Autosaver{
		cron: cron.New(
			cron.WithParser(scheduleParser),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		schedule: sched,
		save:     cfg.Save,
		timeout:  timeout,
	}
	a.cron.Schedule(sched, cron.FuncJob(a.run))

	return a, nil
}

// Start begins the schedule in its own goroutine
func (a *Autosaver) Start() {
	slog.Info("autosave started", "next", a.schedule.Next(time.Now()))
	a.cron.Start()
}

// Stop halts the schedule and waits for a running save to finish or ctx to end
func (a *Autosaver) Stop(ctx context.Context) {
	done := a.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		slog.Warn("autosave stop timed out waiting for running save")
	}
}

// Next returns the first run time after t
func (a *Autosaver) Next(t time.Time) time.Time {
	return a.schedule.Next(t)
}

// RunOnce performs one save immediately
func (a *Autosaver) RunOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	if err := a.save(ctx); err != nil {
		return errors.Wrap(err, "autosave failed")
	}
	slog.Debug("autosave complete", "duration", time.Since(start))
	return nil
}

func (a *Autosaver) run() {
	if err := a.RunOnce(context.Background()); err != nil {
		slog.Error("autosave failed", "error", err.Error())
	}
}
