package cli

import (
	"errors"
	"fmt"

	"github.com/acrispim/vidaplan/internal/constants"
	"github.com/acrispim/vidaplan/internal/storage"
	"github.com/acrispim/vidaplan/internal/utils"
)

type NowCmd struct{}

// Run shows which scheduled activities cover the current wall-clock time.
func (c *NowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return err
	}
	date := now.Format(constants.DateFormat)

	schedule, err := ctx.Store.GetSchedule(date)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no schedule for today (%s)", date)
		}
		return err
	}

	found := false
	for _, activity := range schedule.Activities {
		if !utils.IsActiveNow(activity.StartTime, activity.EndTime, now) {
			continue
		}
		found = true
		fmt.Printf("%s  %s\n",
			activeStyle.Render(fmt.Sprintf("▶ %s", activity.Name)),
			timeStyle.Render(fmt.Sprintf("%s–%s", activity.StartTime, activity.EndTime)))
	}

	if !found {
		fmt.Println("Nothing scheduled right now. Free time.")
	}
	return nil
}
