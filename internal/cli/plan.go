package cli

import (
	"fmt"
	"strings"

	"github.com/acrispim/vidaplan/internal/models"
)

// The plan commands stage raw category inputs for a date. Nothing here
// touches the generated schedule; staging is only made permanent by
// `vidaplan finalize`.

type PlanSleepCmd struct {
	Bed  string `arg:"" help:"Bedtime (HH:MM)."`
	Wake string `arg:"" help:"Wake time (HH:MM)."`
	Date string `help:"Date to plan (YYYY-MM-DD, 'today' or 'tomorrow')." default:"today"`
}

func (c *PlanSleepCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := checkTime(c.Bed); err != nil {
		return err
	}
	if err := checkTime(c.Wake); err != nil {
		return err
	}

	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	input, err := ctx.stagedInput(date)
	if err != nil {
		return err
	}

	input.Sleep = &models.TimeWindow{Start: c.Bed, End: c.Wake}
	if err := ctx.Store.StageInput(date, input); err != nil {
		return err
	}

	fmt.Printf("Staged sleep %s–%s for %s\n", c.Bed, c.Wake, date)
	return nil
}

type PlanJobCmd struct {
	Name  string `arg:"" help:"Job name."`
	Start string `arg:"" help:"Start time (HH:MM)."`
	End   string `arg:"" help:"End time (HH:MM)."`
	Date  string `help:"Date to plan." default:"today"`
}

func (c *PlanJobCmd) Run(ctx *Context) error {
	return stageNamedEntry(ctx, c.Date, c.Name, c.Start, c.End, "job", func(input *models.DayPlanInput) *[]models.NamedEntry {
		return &input.Jobs
	})
}

type PlanStudyCmd struct {
	Name  string `arg:"" help:"Study subject."`
	Start string `arg:"" help:"Start time (HH:MM)."`
	End   string `arg:"" help:"End time (HH:MM)."`
	Date  string `help:"Date to plan." default:"today"`
}

func (c *PlanStudyCmd) Run(ctx *Context) error {
	return stageNamedEntry(ctx, c.Date, c.Name, c.Start, c.End, "study", func(input *models.DayPlanInput) *[]models.NamedEntry {
		return &input.Studies
	})
}

type PlanProjectCmd struct {
	Name  string `arg:"" help:"Project name."`
	Start string `arg:"" help:"Start time (HH:MM)."`
	End   string `arg:"" help:"End time (HH:MM)."`
	Date  string `help:"Date to plan." default:"today"`
}

func (c *PlanProjectCmd) Run(ctx *Context) error {
	return stageNamedEntry(ctx, c.Date, c.Name, c.Start, c.End, "project", func(input *models.DayPlanInput) *[]models.NamedEntry {
		return &input.Projects
	})
}

// stageNamedEntry appends a time slot to the named entry of a category,
// creating the entry when it does not exist yet.
func stageNamedEntry(ctx *Context, dateArg, name, start, end, label string, category func(*models.DayPlanInput) *[]models.NamedEntry) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := checkTime(start); err != nil {
		return err
	}
	if err := checkTime(end); err != nil {
		return err
	}

	date, err := ctx.resolveDate(dateArg)
	if err != nil {
		return err
	}
	input, err := ctx.stagedInput(date)
	if err != nil {
		return err
	}

	entries := category(&input)
	slot := models.TimeWindow{Start: start, End: end}
	found := false
	for i := range *entries {
		if (*entries)[i].Name == name {
			(*entries)[i].Times = append((*entries)[i].Times, slot)
			found = true
			break
		}
	}
	if !found {
		*entries = append(*entries, models.NamedEntry{Name: name, Times: []models.TimeWindow{slot}})
	}

	if err := ctx.Store.StageInput(date, input); err != nil {
		return err
	}

	fmt.Printf("Staged %s %q %s–%s for %s\n", label, name, start, end, date)
	return nil
}

type PlanHobbyCmd struct {
	Name  string `arg:"" help:"Hobby name."`
	Start string `arg:"" help:"Start time (HH:MM)."`
	End   string `arg:"" help:"End time (HH:MM)."`
	Date  string `help:"Date to plan." default:"today"`
}

func (c *PlanHobbyCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := checkTime(c.Start); err != nil {
		return err
	}
	if err := checkTime(c.End); err != nil {
		return err
	}

	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	input, err := ctx.stagedInput(date)
	if err != nil {
		return err
	}

	input.Hobbies = append(input.Hobbies, models.TimeBlock{Name: c.Name, Start: c.Start, End: c.End})
	if err := ctx.Store.StageInput(date, input); err != nil {
		return err
	}

	fmt.Printf("Staged hobby %q %s–%s for %s\n", c.Name, c.Start, c.End, date)
	return nil
}

type PlanCleaningCmd struct {
	Start string `arg:"" help:"Start time (HH:MM)."`
	End   string `arg:"" help:"End time (HH:MM)."`
	Notes string `help:"Optional notes."`
	Date  string `help:"Date to plan." default:"today"`
}

func (c *PlanCleaningCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := checkTime(c.Start); err != nil {
		return err
	}
	if err := checkTime(c.End); err != nil {
		return err
	}

	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	input, err := ctx.stagedInput(date)
	if err != nil {
		return err
	}

	input.Cleaning = &models.CleaningInput{Start: c.Start, End: c.End, Notes: c.Notes}
	if err := ctx.Store.StageInput(date, input); err != nil {
		return err
	}

	fmt.Printf("Staged cleaning %s–%s for %s\n", c.Start, c.End, date)
	return nil
}

type PlanExerciseCmd struct {
	Start string `arg:"" help:"Start time (HH:MM)."`
	End   string `arg:"" help:"End time (HH:MM)."`
	Type  string `help:"Exercise type (e.g. running, gym)."`
	Date  string `help:"Date to plan." default:"today"`
}

func (c *PlanExerciseCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := checkTime(c.Start); err != nil {
		return err
	}
	if err := checkTime(c.End); err != nil {
		return err
	}

	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	input, err := ctx.stagedInput(date)
	if err != nil {
		return err
	}

	input.Exercise = &models.ExerciseInput{Start: c.Start, End: c.End, Type: c.Type}
	if err := ctx.Store.StageInput(date, input); err != nil {
		return err
	}

	fmt.Printf("Staged exercise %s–%s for %s\n", c.Start, c.End, date)
	return nil
}

type PlanMealsCmd struct {
	Count int      `arg:"" help:"Number of meals."`
	At    []string `help:"Explicit meal windows (HH:MM-HH:MM); overrides auto-spacing." sep:","`
	Date  string   `help:"Date to plan." default:"today"`
}

func (c *PlanMealsCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if c.Count < 0 {
		return fmt.Errorf("meal count cannot be negative")
	}

	var times []models.TimeWindow
	for _, window := range c.At {
		parts := strings.SplitN(window, "-", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid meal window %q, use HH:MM-HH:MM", window)
		}
		if err := checkTime(parts[0]); err != nil {
			return err
		}
		if err := checkTime(parts[1]); err != nil {
			return err
		}
		times = append(times, models.TimeWindow{Start: parts[0], End: parts[1]})
	}

	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	input, err := ctx.stagedInput(date)
	if err != nil {
		return err
	}

	input.MealsCount = c.Count
	input.MealTimes = times
	if err := ctx.Store.StageInput(date, input); err != nil {
		return err
	}

	if len(times) > 0 {
		fmt.Printf("Staged %d meal(s) at explicit times for %s\n", len(times), date)
	} else {
		fmt.Printf("Staged %d auto-spaced meal(s) for %s\n", c.Count, date)
	}
	return nil
}

type PlanHydrationCmd struct {
	Start    string `arg:"" help:"Start time (HH:MM)."`
	End      string `arg:"" help:"End time (HH:MM)."`
	Goal     int    `help:"Daily water goal in ml (default from settings)."`
	Interval int    `help:"Reminder interval in minutes (default from settings)."`
	Date     string `help:"Date to plan." default:"today"`
}

func (c *PlanHydrationCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := checkTime(c.Start); err != nil {
		return err
	}
	if err := checkTime(c.End); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	goal := c.Goal
	if goal == 0 {
		goal = settings.DefaultWaterGoalMl
	}
	interval := c.Interval
	if interval == 0 {
		interval = settings.DefaultWaterIntervalMin
	}

	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	input, err := ctx.stagedInput(date)
	if err != nil {
		return err
	}

	input.Hydration = &models.HydrationInput{
		WaterGoalMl:      goal,
		WaterIntervalMin: interval,
		Start:            c.Start,
		End:              c.End,
	}
	if err := ctx.Store.StageInput(date, input); err != nil {
		return err
	}

	fmt.Printf("Staged hydration %s–%s (%d ml goal) for %s\n", c.Start, c.End, goal, date)
	return nil
}

type PlanShowCmd struct {
	Date string `arg:"" help:"Date to show." default:"today"`
}

func (c *PlanShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	input, err := ctx.stagedInput(date)
	if err != nil {
		return err
	}
	if input.IsEmpty() {
		fmt.Printf("No plan staged for %s\n", date)
		return nil
	}

	fmt.Printf("Staged plan for %s:\n\n", date)
	if input.Sleep != nil {
		fmt.Printf("  sleep      %s–%s\n", input.Sleep.Start, input.Sleep.End)
	}
	for _, job := range input.Jobs {
		for _, slot := range job.Times {
			fmt.Printf("  job        %-20s %s–%s\n", job.Name, slot.Start, slot.End)
		}
	}
	for _, study := range input.Studies {
		for _, slot := range study.Times {
			fmt.Printf("  study      %-20s %s–%s\n", study.Name, slot.Start, slot.End)
		}
	}
	for _, project := range input.Projects {
		for _, slot := range project.Times {
			fmt.Printf("  project    %-20s %s–%s\n", project.Name, slot.Start, slot.End)
		}
	}
	for _, hobby := range input.Hobbies {
		fmt.Printf("  hobby      %-20s %s–%s\n", hobby.Name, hobby.Start, hobby.End)
	}
	if input.Cleaning != nil {
		fmt.Printf("  cleaning   %s–%s\n", input.Cleaning.Start, input.Cleaning.End)
	}
	if input.Exercise != nil {
		fmt.Printf("  exercise   %s–%s\n", input.Exercise.Start, input.Exercise.End)
	}
	if len(input.MealTimes) > 0 {
		for i, slot := range input.MealTimes {
			fmt.Printf("  meal %-2d    %s–%s\n", i+1, slot.Start, slot.End)
		}
	} else if input.MealsCount > 0 {
		fmt.Printf("  meals      %d (auto-spaced)\n", input.MealsCount)
	}
	if input.Hydration != nil {
		fmt.Printf("  hydration  %s–%s (%d ml)\n", input.Hydration.Start, input.Hydration.End, input.Hydration.WaterGoalMl)
	}

	return nil
}

type PlanClearCmd struct {
	Date string `arg:"" help:"Date to clear." default:"today"`
}

func (c *PlanClearCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	if err := ctx.Store.ClearStagedInput(date); err != nil {
		return err
	}

	fmt.Printf("Cleared staged plan for %s\n", date)
	return nil
}
