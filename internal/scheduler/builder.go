package scheduler

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/acrispim/vidaplan/internal/constants"
	"github.com/acrispim/vidaplan/internal/models"
	"github.com/acrispim/vidaplan/internal/utils"
)

// The builder converts raw category inputs into normalized activities.
// It validates every time field up front so that malformed input never
// reaches the arithmetic helpers downstream, and it never sorts: output
// order is category-processing order.

func buildSleep(window models.TimeWindow) (models.Activity, error) {
	if err := checkWindow(window.Start, window.End); err != nil {
		return models.Activity{}, fmt.Errorf("sleep: %w", err)
	}
	return models.Activity{
		ID:        uuid.NewString(),
		Type:      models.ActivitySleep,
		Name:      "Sleep",
		StartTime: window.Start,
		EndTime:   window.End,
	}, nil
}

// buildNamedEntries expands jobs, studies and projects: one activity per
// (entry, time-slot) pair, named after the entry.
func buildNamedEntries(entries []models.NamedEntry, actType models.ActivityType) ([]models.Activity, error) {
	var activities []models.Activity
	for _, entry := range entries {
		for _, slot := range entry.Times {
			if err := checkWindow(slot.Start, slot.End); err != nil {
				return nil, fmt.Errorf("%s %q: %w", actType, entry.Name, err)
			}
			activities = append(activities, models.Activity{
				ID:        uuid.NewString(),
				Type:      actType,
				Name:      entry.Name,
				StartTime: slot.Start,
				EndTime:   slot.End,
			})
		}
	}
	return activities, nil
}

func buildHobbies(hobbies []models.TimeBlock) ([]models.Activity, error) {
	var activities []models.Activity
	for _, hobby := range hobbies {
		if err := checkWindow(hobby.Start, hobby.End); err != nil {
			return nil, fmt.Errorf("hobby %q: %w", hobby.Name, err)
		}
		activities = append(activities, models.Activity{
			ID:        uuid.NewString(),
			Type:      models.ActivityHobby,
			Name:      hobby.Name,
			StartTime: hobby.Start,
			EndTime:   hobby.End,
		})
	}
	return activities, nil
}

func buildCleaning(cleaning models.CleaningInput) (models.Activity, error) {
	if err := checkWindow(cleaning.Start, cleaning.End); err != nil {
		return models.Activity{}, fmt.Errorf("cleaning: %w", err)
	}
	return models.Activity{
		ID:        uuid.NewString(),
		Type:      models.ActivityCleaning,
		Name:      "Cleaning",
		StartTime: cleaning.Start,
		EndTime:   cleaning.End,
		Notes:     cleaning.Notes,
	}, nil
}

func buildExercise(exercise models.ExerciseInput) (models.Activity, error) {
	if err := checkWindow(exercise.Start, exercise.End); err != nil {
		return models.Activity{}, fmt.Errorf("exercise: %w", err)
	}
	name := "Exercise"
	if exercise.Type != "" {
		name = exercise.Type
	}
	return models.Activity{
		ID:           uuid.NewString(),
		Type:         models.ActivityExercise,
		Name:         name,
		StartTime:    exercise.Start,
		EndTime:      exercise.End,
		ExerciseType: exercise.Type,
	}, nil
}

// buildMeals materializes meal activities. Explicit meal times always win;
// a bare count synthesizes evenly spaced slots across the waking window:
// slot i of n starts at wake + (i+1) * wakingMinutes / (n+1) and lasts
// DefaultMealDurationMin, so no meal lands on wake or bedtime itself.
func buildMeals(plan models.DayPlanInput) ([]models.Activity, error) {
	if len(plan.MealTimes) > 0 {
		var activities []models.Activity
		for i, slot := range plan.MealTimes {
			if err := checkWindow(slot.Start, slot.End); err != nil {
				return nil, fmt.Errorf("meal %d: %w", i+1, err)
			}
			activities = append(activities, mealActivity(i, slot.Start, slot.End))
		}
		return activities, nil
	}

	if plan.MealsCount <= 0 {
		return nil, nil
	}

	// Synthesis needs the waking window, so a bare count without a sleep
	// window is a contract violation.
	if !plan.HasSleepWindow() {
		return nil, fmt.Errorf("meals: cannot synthesize %d slots without a sleep window", plan.MealsCount)
	}

	wake, err := utils.ToMinutes(plan.Sleep.End)
	if err != nil {
		return nil, fmt.Errorf("meals: %w", err)
	}
	waking, err := utils.Duration(plan.Sleep.End, plan.Sleep.Start)
	if err != nil {
		return nil, fmt.Errorf("meals: %w", err)
	}

	var activities []models.Activity
	for i := 0; i < plan.MealsCount; i++ {
		start := wake + (i+1)*waking/(plan.MealsCount+1)
		end := start + constants.DefaultMealDurationMin
		activities = append(activities, mealActivity(i, utils.FormatMinutes(start), utils.FormatMinutes(end)))
	}
	return activities, nil
}

func mealActivity(index int, start, end string) models.Activity {
	return models.Activity{
		ID:        uuid.NewString(),
		Type:      models.ActivityMeal,
		Name:      fmt.Sprintf("Meal %d", index+1),
		StartTime: start,
		EndTime:   end,
	}
}

// buildHydration produces a single hydration activity carrying goal and
// reminder cadence as metadata; intermediate reminders are never
// materialized as activities.
func buildHydration(hydration models.HydrationInput) (models.Activity, error) {
	if err := checkWindow(hydration.Start, hydration.End); err != nil {
		return models.Activity{}, fmt.Errorf("hydration: %w", err)
	}
	goal := hydration.WaterGoalMl
	if goal == 0 {
		goal = constants.DefaultWaterGoalMl
	}
	interval := hydration.WaterIntervalMin
	if interval == 0 {
		interval = constants.DefaultWaterIntervalMin
	}
	return models.Activity{
		ID:               uuid.NewString(),
		Type:             models.ActivityHydration,
		Name:             "Hydration",
		StartTime:        hydration.Start,
		EndTime:          hydration.End,
		WaterGoalMl:      goal,
		WaterIntervalMin: interval,
	}, nil
}

func checkWindow(start, end string) error {
	if _, err := utils.ToMinutes(start); err != nil {
		return err
	}
	if _, err := utils.ToMinutes(end); err != nil {
		return err
	}
	return nil
}
