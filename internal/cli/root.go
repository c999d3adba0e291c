package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/acrispim/vidaplan/internal/constants"
	"github.com/acrispim/vidaplan/internal/models"
	"github.com/acrispim/vidaplan/internal/storage"
	"github.com/acrispim/vidaplan/internal/utils"
	"github.com/acrispim/vidaplan/internal/validation"
)

type Context struct {
	Store storage.Provider
}

// resolveDate turns a date argument ("today", "tomorrow" or YYYY-MM-DD)
// into a date key in the configured timezone.
func (ctx *Context) resolveDate(arg string) (string, error) {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return "", fmt.Errorf("failed to get settings: %w", err)
	}

	switch strings.ToLower(arg) {
	case "", "today":
		return utils.TodayInTimezone(settings.Timezone)
	case "tomorrow":
		now, err := utils.NowInTimezone(settings.Timezone)
		if err != nil {
			return "", err
		}
		return now.AddDate(0, 0, 1).Format(constants.DateFormat), nil
	}

	t, err := time.Parse(constants.DateFormat, arg)
	if err != nil {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD, 'today' or 'tomorrow': %w", err)
	}
	return t.Format(constants.DateFormat), nil
}

// stagedInput returns the staged plan for a date, empty when none exists.
func (ctx *Context) stagedInput(date string) (models.DayPlanInput, error) {
	input, err := ctx.Store.GetStagedInput(date)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.DayPlanInput{}, nil
		}
		return models.DayPlanInput{}, err
	}
	return input, nil
}

func checkTime(timeStr string) error {
	if _, err := utils.ToMinutes(timeStr); err != nil {
		return fmt.Errorf("invalid time %q, use HH:MM", timeStr)
	}
	return nil
}

// formatConflict renders one conflict for the terminal. The validator
// itself never produces user-facing text.
func formatConflict(c validation.Conflict) string {
	switch c.Kind {
	case validation.ConflictCrossMidnightSleep:
		return fmt.Sprintf("previous day's sleep (until %s) overlaps %q (%s–%s) by %d min",
			c.ActivityA.EndTime, c.ActivityB.Name, c.ActivityB.StartTime, c.ActivityB.EndTime, c.OverlapMinutes)
	default:
		return fmt.Sprintf("%q (%s–%s) overlaps %q (%s–%s) by %d min",
			c.ActivityA.Name, c.ActivityA.StartTime, c.ActivityA.EndTime,
			c.ActivityB.Name, c.ActivityB.StartTime, c.ActivityB.EndTime, c.OverlapMinutes)
	}
}
