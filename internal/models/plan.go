package models

// NamedEntry is a named category item (job, study, project) with one or
// more time slots.
type NamedEntry struct {
	Name  string       `json:"name"`
	Times []TimeWindow `json:"times"`
}

// TimeBlock is a single named time window (hobbies).
type TimeBlock struct {
	Name  string `json:"name"`
	Start string `json:"start"` // HH:MM format
	End   string `json:"end"`   // HH:MM format
}

// CleaningInput is the optional cleaning category.
type CleaningInput struct {
	Start string `json:"start"` // HH:MM format
	End   string `json:"end"`   // HH:MM format
	Notes string `json:"notes,omitempty"`
}

// HydrationInput is the optional hydration category.
type HydrationInput struct {
	WaterGoalMl      int    `json:"water_goal_ml"`
	WaterIntervalMin int    `json:"water_interval_min"`
	Start            string `json:"start"` // HH:MM format
	End              string `json:"end"`   // HH:MM format
}

// ExerciseInput is the optional exercise category.
type ExerciseInput struct {
	Start string `json:"start"` // HH:MM format
	End   string `json:"end"`   // HH:MM format
	Type  string `json:"type,omitempty"`
}

// DayPlanInput holds the raw category inputs for one day being edited.
// Optional categories are present only when the user opted in.
type DayPlanInput struct {
	Sleep      *TimeWindow     `json:"sleep,omitempty"` // Start = bedtime, End = wake
	Jobs       []NamedEntry    `json:"jobs,omitempty"`
	Studies    []NamedEntry    `json:"studies,omitempty"`
	Projects   []NamedEntry    `json:"projects,omitempty"`
	Hobbies    []TimeBlock     `json:"hobbies,omitempty"`
	Cleaning   *CleaningInput  `json:"cleaning,omitempty"`
	MealsCount int             `json:"meals_count,omitempty"`
	MealTimes  []TimeWindow    `json:"meal_times,omitempty"`
	Hydration  *HydrationInput `json:"hydration,omitempty"`
	Exercise   *ExerciseInput  `json:"exercise,omitempty"`
}

// IsEmpty reports whether no category at all has been staged.
func (p DayPlanInput) IsEmpty() bool {
	return p.Sleep == nil &&
		len(p.Jobs) == 0 &&
		len(p.Studies) == 0 &&
		len(p.Projects) == 0 &&
		len(p.Hobbies) == 0 &&
		p.Cleaning == nil &&
		p.MealsCount == 0 &&
		len(p.MealTimes) == 0 &&
		p.Hydration == nil &&
		p.Exercise == nil
}

// HasSleepWindow reports whether both bedtime and wake time are staged.
func (p DayPlanInput) HasSleepWindow() bool {
	return p.Sleep != nil && p.Sleep.Start != "" && p.Sleep.End != ""
}
