package models

type ActivityType string

const (
	ActivitySleep     ActivityType = "sleep"
	ActivityWork      ActivityType = "work"
	ActivityStudy     ActivityType = "study"
	ActivityCleaning  ActivityType = "cleaning"
	ActivityProject   ActivityType = "project"
	ActivityHobby     ActivityType = "hobby"
	ActivityExercise  ActivityType = "exercise"
	ActivityMeal      ActivityType = "meal"
	ActivityHydration ActivityType = "hydration"
	ActivityFree      ActivityType = "free"
)

type TrackingStatus string

const (
	TrackingComplete   TrackingStatus = "complete"
	TrackingIncomplete TrackingStatus = "incomplete"
)

// SimpleTracking records completion state for most activity types
type SimpleTracking struct {
	Status     TrackingStatus `json:"status"`
	MarkedAt   string         `json:"marked_at,omitempty"`   // RFC3339 timestamp
	MarkedDate string         `json:"marked_date,omitempty"` // YYYY-MM-DD format
}

// WaterTracking records hydration progress on a hydration activity
type WaterTracking struct {
	ConsumedMl int `json:"consumed_ml"`
	GoalMl     int `json:"goal_ml"`
}

// TimeWindow is a wall-clock interval; it crosses midnight when End < Start
type TimeWindow struct {
	Start string `json:"start"` // HH:MM format
	End   string `json:"end"`   // HH:MM format
}

// Activity is one entry of a generated day schedule.
// Identity for merge purposes is ID when present, otherwise (Type, Name).
type Activity struct {
	ID        string       `json:"id,omitempty"`
	Type      ActivityType `json:"type"`
	Name      string       `json:"name"`
	StartTime string       `json:"start_time"` // HH:MM format
	EndTime   string       `json:"end_time"`   // HH:MM format

	// Type-specific fields
	Notes            string `json:"notes,omitempty"`              // cleaning
	ExerciseType     string `json:"exercise_type,omitempty"`      // exercise
	WaterGoalMl      int    `json:"water_goal_ml,omitempty"`      // hydration
	WaterIntervalMin int    `json:"water_interval_min,omitempty"` // hydration

	// Tracking state; survives regeneration only via the merge step
	SimpleTracking *SimpleTracking `json:"simple_tracking,omitempty"`
	WaterTracking  *WaterTracking  `json:"water_tracking,omitempty"`
	OriginalTime   *TimeWindow     `json:"original_time,omitempty"`
	TimeAdjusted   bool            `json:"time_adjusted,omitempty"`
}

// HasTracking reports whether the activity carries any user-entered state
// worth rescuing during a merge.
func (a Activity) HasTracking() bool {
	return a.SimpleTracking != nil || a.WaterTracking != nil || a.OriginalTime != nil
}
