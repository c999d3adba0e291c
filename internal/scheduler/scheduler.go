package scheduler

import (
	"errors"
	"sort"

	"github.com/acrispim/vidaplan/internal/models"
	"github.com/acrispim/vidaplan/internal/utils"
)

// ErrNoSleepWindow is returned when generation is attempted without both a
// bedtime and a wake time. The finalizer checks this precondition before
// calling Generate, so hitting it here means a caller skipped validation.
var ErrNoSleepWindow = errors.New("day plan has no sleep window")

type Scheduler struct{}

func New() *Scheduler {
	return &Scheduler{}
}

// Generate synthesizes the activity timeline for one day's raw plan data.
// Activities are ordered by clock-time start; activities sharing a start
// time keep category-insertion order so repeated generation from the same
// input is reproducible.
func (s *Scheduler) Generate(plan models.DayPlanInput) ([]models.Activity, error) {
	if !plan.HasSleepWindow() {
		return nil, ErrNoSleepWindow
	}

	var activities []models.Activity

	sleep, err := buildSleep(*plan.Sleep)
	if err != nil {
		return nil, err
	}
	activities = append(activities, sleep)

	jobs, err := buildNamedEntries(plan.Jobs, models.ActivityWork)
	if err != nil {
		return nil, err
	}
	activities = append(activities, jobs...)

	studies, err := buildNamedEntries(plan.Studies, models.ActivityStudy)
	if err != nil {
		return nil, err
	}
	activities = append(activities, studies...)

	projects, err := buildNamedEntries(plan.Projects, models.ActivityProject)
	if err != nil {
		return nil, err
	}
	activities = append(activities, projects...)

	hobbies, err := buildHobbies(plan.Hobbies)
	if err != nil {
		return nil, err
	}
	activities = append(activities, hobbies...)

	if plan.Cleaning != nil {
		cleaning, err := buildCleaning(*plan.Cleaning)
		if err != nil {
			return nil, err
		}
		activities = append(activities, cleaning)
	}

	if plan.Exercise != nil {
		exercise, err := buildExercise(*plan.Exercise)
		if err != nil {
			return nil, err
		}
		activities = append(activities, exercise)
	}

	meals, err := buildMeals(plan)
	if err != nil {
		return nil, err
	}
	activities = append(activities, meals...)

	if plan.Hydration != nil {
		hydration, err := buildHydration(*plan.Hydration)
		if err != nil {
			return nil, err
		}
		activities = append(activities, hydration)
	}

	// Builder output is already validated, so start times parse cleanly.
	sort.SliceStable(activities, func(i, j int) bool {
		si, _ := utils.ToMinutes(activities[i].StartTime)
		sj, _ := utils.ToMinutes(activities[j].StartTime)
		return si < sj
	})

	return activities, nil
}

// CountNonSleep returns the number of activities other than sleep. The
// finalizer treats a schedule with zero non-sleep activities as empty.
func CountNonSleep(activities []models.Activity) int {
	count := 0
	for _, a := range activities {
		if a.Type != models.ActivitySleep {
			count++
		}
	}
	return count
}
