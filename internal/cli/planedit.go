package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/acrispim/vidaplan/internal/models"
	"github.com/acrispim/vidaplan/internal/utils"
)

type PlanEditCmd struct {
	Date string `arg:"" help:"Date to plan (YYYY-MM-DD, 'today' or 'tomorrow')." default:"today"`
}

// Run collects a full day plan in one interactive pass and stages it,
// replacing whatever was staged for the date before.
func (c *PlanEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}

	staged, err := ctx.stagedInput(date)
	if err != nil {
		return err
	}

	fm := newPlanForm(staged)
	if err := fm.form().Run(); err != nil {
		return fmt.Errorf("plan editing aborted: %w", err)
	}

	input, err := fm.toInput()
	if err != nil {
		return err
	}

	if err := ctx.Store.StageInput(date, input); err != nil {
		return err
	}

	fmt.Printf("Staged plan for %s. Run 'vidaplan finalize %s' to commit it.\n", date, date)
	return nil
}

// planForm holds the string-typed field values huh binds to.
type planForm struct {
	Bed            string
	Wake           string
	Meals          string
	HydrationStart string
	HydrationEnd   string
	WaterGoal      string
	ExerciseStart  string
	ExerciseEnd    string
	ExerciseType   string

	staged models.DayPlanInput
}

func newPlanForm(staged models.DayPlanInput) *planForm {
	fm := &planForm{staged: staged, Meals: "0"}
	if staged.Sleep != nil {
		fm.Bed = staged.Sleep.Start
		fm.Wake = staged.Sleep.End
	}
	if staged.MealsCount > 0 {
		fm.Meals = strconv.Itoa(staged.MealsCount)
	}
	if staged.Hydration != nil {
		fm.HydrationStart = staged.Hydration.Start
		fm.HydrationEnd = staged.Hydration.End
		fm.WaterGoal = strconv.Itoa(staged.Hydration.WaterGoalMl)
	}
	if staged.Exercise != nil {
		fm.ExerciseStart = staged.Exercise.Start
		fm.ExerciseEnd = staged.Exercise.End
		fm.ExerciseType = staged.Exercise.Type
	}
	return fm
}

func (fm *planForm) form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Bedtime (HH:MM)").
				Value(&fm.Bed).
				Validate(validateTime),
			huh.NewInput().
				Title("Wake time (HH:MM)").
				Value(&fm.Wake).
				Validate(validateTime),
			huh.NewInput().
				Title("Meals per day").
				Description("0 to skip; slots are auto-spaced across waking hours").
				Value(&fm.Meals).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil {
						return fmt.Errorf("enter a number")
					}
					if n < 0 {
						return fmt.Errorf("meal count cannot be negative")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Hydration window start (HH:MM)").
				Description("Leave empty to skip hydration").
				Value(&fm.HydrationStart).
				Validate(validateOptionalTime),
			huh.NewInput().
				Title("Hydration window end (HH:MM)").
				Value(&fm.HydrationEnd).
				Validate(validateOptionalTime),
			huh.NewInput().
				Title("Water goal (ml)").
				Value(&fm.WaterGoal),
			huh.NewInput().
				Title("Exercise start (HH:MM)").
				Description("Leave empty to skip exercise").
				Value(&fm.ExerciseStart).
				Validate(validateOptionalTime),
			huh.NewInput().
				Title("Exercise end (HH:MM)").
				Value(&fm.ExerciseEnd).
				Validate(validateOptionalTime),
			huh.NewInput().
				Title("Exercise type").
				Value(&fm.ExerciseType),
		),
	)
}

// toInput merges the form values over the staged plan. Jobs, studies,
// projects and hobbies keep whatever the plan subcommands staged.
func (fm *planForm) toInput() (models.DayPlanInput, error) {
	input := fm.staged

	input.Sleep = &models.TimeWindow{Start: strings.TrimSpace(fm.Bed), End: strings.TrimSpace(fm.Wake)}

	meals, err := strconv.Atoi(strings.TrimSpace(fm.Meals))
	if err != nil {
		return models.DayPlanInput{}, fmt.Errorf("invalid meal count %q", fm.Meals)
	}
	input.MealsCount = meals

	if strings.TrimSpace(fm.HydrationStart) != "" {
		goal, _ := strconv.Atoi(strings.TrimSpace(fm.WaterGoal))
		input.Hydration = &models.HydrationInput{
			Start:       strings.TrimSpace(fm.HydrationStart),
			End:         strings.TrimSpace(fm.HydrationEnd),
			WaterGoalMl: goal,
		}
	} else {
		input.Hydration = nil
	}

	if strings.TrimSpace(fm.ExerciseStart) != "" {
		input.Exercise = &models.ExerciseInput{
			Start: strings.TrimSpace(fm.ExerciseStart),
			End:   strings.TrimSpace(fm.ExerciseEnd),
			Type:  strings.TrimSpace(fm.ExerciseType),
		}
	} else {
		input.Exercise = nil
	}

	return input, nil
}

func validateTime(s string) error {
	if _, err := utils.ToMinutes(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use HH:MM")
	}
	return nil
}

func validateOptionalTime(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validateTime(s)
}
