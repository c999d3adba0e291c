package models

// DailySchedule is the persisted record for one calendar date.
// Activities are replaced wholesale on every re-finalize; per-activity
// tracking sub-state is carried over by the merge step.
type DailySchedule struct {
	Date          string       `json:"date"` // YYYY-MM-DD format
	DayName       string       `json:"day_name"`
	FormattedDate string       `json:"formatted_date"`
	PlanData      DayPlanInput `json:"plan_data"`
	Activities    []Activity   `json:"activities"`
	CreatedAt     string       `json:"created_at"` // RFC3339 timestamp
	LastSaved     string       `json:"last_saved"` // RFC3339 timestamp
	IsPlanned     bool         `json:"is_planned"`
}

// SleepActivity returns the schedule's sleep activity, if any.
func (s DailySchedule) SleepActivity() *Activity {
	for i := range s.Activities {
		if s.Activities[i].Type == ActivitySleep {
			return &s.Activities[i]
		}
	}
	return nil
}
