package cli

import (
	"errors"
	"fmt"

	"github.com/acrispim/vidaplan/internal/models"
	"github.com/acrispim/vidaplan/internal/storage"
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD, 'today' or 'tomorrow')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
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
			return fmt.Errorf("no schedule for %s; stage a plan and run 'vidaplan finalize'", date)
		}
		return err
	}

	fmt.Println(headerStyle.Render(schedule.FormattedDate))
	fmt.Println()

	for _, activity := range schedule.Activities {
		fmt.Printf("%s  %-10s %-24s %s\n",
			timeStyle.Render(fmt.Sprintf("%s–%s", activity.StartTime, activity.EndTime)),
			activity.Type, activity.Name, trackingMark(activity))
	}

	return nil
}

func trackingMark(activity models.Activity) string {
	if activity.Type == models.ActivityHydration && activity.WaterTracking != nil {
		return fmt.Sprintf("%d/%d ml", activity.WaterTracking.ConsumedMl, activity.WaterTracking.GoalMl)
	}
	if activity.SimpleTracking != nil && activity.SimpleTracking.Status == models.TrackingComplete {
		return doneStyle.Render("✓ done")
	}
	return ""
}
