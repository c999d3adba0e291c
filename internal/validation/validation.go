package validation

import (
	"github.com/acrispim/vidaplan/internal/constants"
	"github.com/acrispim/vidaplan/internal/models"
	"github.com/acrispim/vidaplan/internal/utils"
)

// ConflictKind classifies how two activities collide
type ConflictKind string

const (
	// ConflictSameDay marks two activities of the same schedule overlapping
	ConflictSameDay ConflictKind = "same_day"
	// ConflictCrossMidnightSleep marks the previous day's sleep spilling
	// past midnight into the current day's activities
	ConflictCrossMidnightSleep ConflictKind = "cross_midnight_sleep"
)

// Conflict describes one detected overlap. It carries data only; rendering
// a user-facing message is the caller's concern.
type Conflict struct {
	Kind           ConflictKind
	Date           string // YYYY-MM-DD of the schedule being validated
	ActivityA      models.Activity
	ActivityB      models.Activity
	OverlapMinutes int
}

// ScheduleSource provides read access to persisted schedules. A lookup
// error is treated as "no schedule for that date".
type ScheduleSource interface {
	GetSchedule(date string) (models.DailySchedule, error)
}

// Validator detects scheduling conflicts in a generated timeline
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// Validate pairwise-compares the day's activities, then checks the previous
// calendar day's persisted sleep window against the current day. Conflicts
// come back in comparison order: day-internal first, cross-day after.
// O(n²) over the day's activities; n is bounded by the daily category count.
func (v *Validator) Validate(activities []models.Activity, date string, source ScheduleSource) ([]Conflict, error) {
	conflicts := []Conflict{}

	for i := 0; i < len(activities); i++ {
		for j := i + 1; j < len(activities); j++ {
			a, b := activities[i], activities[j]
			overlap, err := utils.Overlaps(a.StartTime, a.EndTime, b.StartTime, b.EndTime)
			if err != nil {
				return nil, err
			}
			if !overlap {
				continue
			}
			minutes, err := utils.OverlapMinutes(a.StartTime, a.EndTime, b.StartTime, b.EndTime)
			if err != nil {
				return nil, err
			}
			conflicts = append(conflicts, Conflict{
				Kind:           ConflictSameDay,
				Date:           date,
				ActivityA:      a,
				ActivityB:      b,
				OverlapMinutes: minutes,
			})
		}
	}

	crossDay, err := v.checkPreviousSleep(activities, date, source)
	if err != nil {
		return nil, err
	}
	conflicts = append(conflicts, crossDay...)

	return conflicts, nil
}

// checkPreviousSleep detects yesterday's sleep window carrying over past
// midnight into today's early-morning activities.
func (v *Validator) checkPreviousSleep(activities []models.Activity, date string, source ScheduleSource) ([]Conflict, error) {
	if source == nil {
		return nil, nil
	}

	prevDate, err := utils.PreviousDate(date)
	if err != nil {
		return nil, err
	}

	prev, err := source.GetSchedule(prevDate)
	if err != nil {
		// No persisted schedule for the previous day.
		return nil, nil
	}

	sleep := prev.SleepActivity()
	if sleep == nil {
		return nil, nil
	}

	sleepStart, err := utils.ToMinutes(sleep.StartTime)
	if err != nil {
		return nil, err
	}
	sleepEnd, err := utils.ToMinutes(sleep.EndTime)
	if err != nil {
		return nil, err
	}
	if sleepEnd >= sleepStart {
		// Sleep ended within its own day; nothing carries over.
		return nil, nil
	}

	// The wrapped tail occupies [00:00, sleepEnd) of the current day.
	spill := sleepEnd

	var conflicts []Conflict
	for _, a := range activities {
		start, err := utils.ToMinutes(a.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := utils.ToMinutes(a.EndTime)
		if err != nil {
			return nil, err
		}
		if end < start {
			end += constants.MinutesPerDay
		}
		if start >= spill || end == start {
			continue
		}
		overlap := spill - start
		if end-start < overlap {
			overlap = end - start
		}
		conflicts = append(conflicts, Conflict{
			Kind:           ConflictCrossMidnightSleep,
			Date:           date,
			ActivityA:      *sleep,
			ActivityB:      a,
			OverlapMinutes: overlap,
		})
	}
	return conflicts, nil
}
