package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/acrispim/vidaplan/internal/planner"
	"github.com/acrispim/vidaplan/internal/utils"
)

type FinalizeCmd struct {
	Date string `arg:"" help:"Date to finalize (YYYY-MM-DD, 'today' or 'tomorrow')." default:"today"`
}

// Run commits the staged plan for a date: generate, validate, merge with
// any prior tracking state, save. Failures leave the store untouched; the
// typed error kinds from the planner are translated to guidance here.
func (c *FinalizeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	finalizer := planner.NewFinalizer(ctx.Store, planner.WithClock(func() time.Time {
		now, err := utils.NowInTimezone(settings.Timezone)
		if err != nil {
			return time.Now()
		}
		return now
	}))

	schedule, err := finalizer.Finalize(date)
	if err != nil {
		var conflictErr *planner.ConflictError
		switch {
		case errors.Is(err, planner.ErrEmptyPlan):
			return fmt.Errorf("nothing staged for %s; use 'vidaplan plan' to add categories first", date)
		case errors.Is(err, planner.ErrMissingSleepWindow):
			return fmt.Errorf("set the sleep window first: 'vidaplan plan sleep <bed> <wake> --date %s'", date)
		case errors.Is(err, planner.ErrEmptyGeneration):
			return fmt.Errorf("the plan for %s generated nothing beyond sleep; verify each category was saved", date)
		case errors.As(err, &conflictErr):
			fmt.Printf("Cannot finalize %s, %d conflict(s) found:\n\n", date, len(conflictErr.Conflicts))
			for _, conflict := range conflictErr.Conflicts {
				fmt.Printf("  - %s\n", formatConflict(conflict))
			}
			fmt.Println("\nResolve the overlaps and finalize again. Nothing was saved.")
			return fmt.Errorf("schedule has conflicts")
		default:
			return err
		}
	}

	fmt.Printf("Schedule for %s (%s) committed with %d activities.\n",
		schedule.Date, schedule.DayName, len(schedule.Activities))
	return nil
}
