package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DisplayDateFormat is the long-form date shown on schedule headers
	DisplayDateFormat = "Monday, January 2, 2006"
)

const (
	// MinutesPerDay is the number of minutes in one calendar day
	MinutesPerDay = 1440

	// DefaultMealDurationMin is the length of a synthesized meal slot
	DefaultMealDurationMin = 30

	// DefaultWaterGoalMl is the default daily hydration goal
	DefaultWaterGoalMl = 2000

	// DefaultWaterIntervalMin is the default reminder cadence for hydration
	DefaultWaterIntervalMin = 60
)
