package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/acrispim/vidaplan/internal/constants"
	"github.com/acrispim/vidaplan/internal/logger"
	"github.com/acrispim/vidaplan/internal/models"
	"github.com/acrispim/vidaplan/internal/scheduler"
	"github.com/acrispim/vidaplan/internal/storage"
	"github.com/acrispim/vidaplan/internal/utils"
	"github.com/acrispim/vidaplan/internal/validation"
)

// Store is the slice of the storage surface the finalizer needs.
// storage.Provider satisfies it.
type Store interface {
	GetStagedInput(date string) (models.DayPlanInput, error)
	ClearStagedInput(date string) error
	GetSchedule(date string) (models.DailySchedule, error)
	SaveSchedule(models.DailySchedule) error
}

// Finalizer runs the generate → validate → merge → commit pipeline for one
// date. Every stage either completes or aborts with a typed error and no
// partial writes.
type Finalizer struct {
	store     Store
	scheduler *scheduler.Scheduler
	validator *validation.Validator
	now       func() time.Time
}

// Option configures a Finalizer.
type Option func(*Finalizer)

// WithClock overrides the wall clock, for tests and timezone-aware callers.
func WithClock(now func() time.Time) Option {
	return func(f *Finalizer) {
		f.now = now
	}
}

func NewFinalizer(store Store, opts ...Option) *Finalizer {
	f := &Finalizer{
		store:     store,
		scheduler: scheduler.New(),
		validator: validation.New(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Finalize commits a generated, conflict-free schedule for the date.
func (f *Finalizer) Finalize(date string) (models.DailySchedule, error) {
	staged, err := f.store.GetStagedInput(date)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.DailySchedule{}, ErrEmptyPlan
		}
		return models.DailySchedule{}, fmt.Errorf("failed to read staged plan: %w", err)
	}
	if staged.IsEmpty() {
		return models.DailySchedule{}, ErrEmptyPlan
	}
	if !staged.HasSleepWindow() {
		return models.DailySchedule{}, ErrMissingSleepWindow
	}

	activities, err := f.scheduler.Generate(staged)
	if err != nil {
		return models.DailySchedule{}, fmt.Errorf("failed to generate schedule: %w", err)
	}
	if len(activities) == 0 || scheduler.CountNonSleep(activities) == 0 {
		return models.DailySchedule{}, ErrEmptyGeneration
	}

	conflicts, err := f.validator.Validate(activities, date, f.store)
	if err != nil {
		return models.DailySchedule{}, fmt.Errorf("failed to validate schedule: %w", err)
	}
	if len(conflicts) > 0 {
		return models.DailySchedule{}, &ConflictError{Conflicts: conflicts}
	}

	now := f.now()
	createdAt := now.UTC().Format(time.RFC3339)

	// Only a confirmed absence means a fresh schedule. Any other read
	// failure aborts: committing without the merge would wipe the date's
	// tracking state.
	existing, err := f.store.GetSchedule(date)
	switch {
	case err == nil:
		activities = MergeTracking(activities, existing.Activities)
		if existing.CreatedAt != "" {
			createdAt = existing.CreatedAt
		}
	case !errors.Is(err, storage.ErrNotFound):
		return models.DailySchedule{}, fmt.Errorf("failed to read existing schedule: %w", err)
	}

	dayName, formattedDate, err := utils.DescribeDate(date)
	if err != nil {
		return models.DailySchedule{}, err
	}

	sched := models.DailySchedule{
		Date:          date,
		DayName:       dayName,
		FormattedDate: formattedDate,
		PlanData:      staged,
		Activities:    activities,
		CreatedAt:     createdAt,
		LastSaved:     now.UTC().Format(time.RFC3339),
		IsPlanned:     date != now.Format(constants.DateFormat),
	}

	if err := f.store.SaveSchedule(sched); err != nil {
		return models.DailySchedule{}, fmt.Errorf("failed to save schedule: %w", err)
	}

	if err := f.store.ClearStagedInput(date); err != nil {
		// The schedule is already committed; a stale staged entry is
		// harmless but worth a trace.
		logger.Warn("failed to clear staged plan after commit", "date", date, "error", err)
	}

	logger.Info("schedule finalized", "date", date, "activities", len(sched.Activities))
	return sched, nil
}
