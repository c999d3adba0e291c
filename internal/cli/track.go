package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/acrispim/vidaplan/internal/models"
	"github.com/acrispim/vidaplan/internal/storage"
	"github.com/acrispim/vidaplan/internal/utils"
)

type TrackCmd struct {
	Name string `arg:"" help:"Activity name to mark."`
	Date string `help:"Schedule date." default:"today"`
	Undo bool   `help:"Mark incomplete instead."`
}

// Run toggles an activity's completion mark on the committed schedule.
// The mark lives in tracking sub-state, so it survives a later
// re-finalize of the same date.
func (c *TrackCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}

	schedule, err := ctx.Store.GetSchedule(date)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no schedule for %s", date)
		}
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		now = time.Now()
	}

	matched := -1
	for i := range schedule.Activities {
		if strings.EqualFold(schedule.Activities[i].Name, c.Name) {
			matched = i
			break
		}
	}
	if matched < 0 {
		return fmt.Errorf("no activity named %q on %s", c.Name, date)
	}

	status := models.TrackingComplete
	if c.Undo {
		status = models.TrackingIncomplete
	}
	schedule.Activities[matched].SimpleTracking = &models.SimpleTracking{
		Status:     status,
		MarkedAt:   now.UTC().Format(time.RFC3339),
		MarkedDate: date,
	}
	schedule.LastSaved = now.UTC().Format(time.RFC3339)

	if err := ctx.Store.SaveSchedule(schedule); err != nil {
		return err
	}

	if c.Undo {
		fmt.Printf("Marked %q incomplete on %s\n", schedule.Activities[matched].Name, date)
	} else {
		fmt.Printf("Marked %q complete on %s\n", schedule.Activities[matched].Name, date)
	}
	return nil
}

type WaterCmd struct {
	Ml   int    `arg:"" help:"Milliliters of water to log."`
	Date string `help:"Schedule date." default:"today"`
}

// Run adds water intake to the date's hydration activity.
func (c *WaterCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if c.Ml <= 0 {
		return fmt.Errorf("water amount must be positive")
	}

	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}

	schedule, err := ctx.Store.GetSchedule(date)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no schedule for %s", date)
		}
		return err
	}

	matched := -1
	for i := range schedule.Activities {
		if schedule.Activities[i].Type == models.ActivityHydration {
			matched = i
			break
		}
	}
	if matched < 0 {
		return fmt.Errorf("no hydration activity on %s", date)
	}

	activity := &schedule.Activities[matched]
	if activity.WaterTracking == nil {
		activity.WaterTracking = &models.WaterTracking{GoalMl: activity.WaterGoalMl}
	}
	activity.WaterTracking.ConsumedMl += c.Ml
	schedule.LastSaved = time.Now().UTC().Format(time.RFC3339)

	if err := ctx.Store.SaveSchedule(schedule); err != nil {
		return err
	}

	fmt.Printf("Logged %d ml (%d/%d ml today)\n",
		c.Ml, activity.WaterTracking.ConsumedMl, activity.WaterTracking.GoalMl)
	return nil
}
