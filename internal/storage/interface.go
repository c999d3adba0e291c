package storage

import (
	"errors"

	"github.com/acrispim/vidaplan/internal/models"
)

// ErrNotFound is returned when no record exists for the requested key.
var ErrNotFound = errors.New("record not found")

// Settings represents application-wide settings
type Settings struct {
	Timezone                string `json:"timezone"`                   // IANA timezone name, or "Local" for the system timezone
	DefaultWaterGoalMl      int    `json:"default_water_goal_ml"`      // hydration goal used when staging without an explicit goal
	DefaultWaterIntervalMin int    `json:"default_water_interval_min"` // hydration reminder cadence in minutes
}

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Schedules (the day-plan store), keyed by YYYY-MM-DD
	SaveSchedule(models.DailySchedule) error
	GetSchedule(date string) (models.DailySchedule, error)
	GetAllSchedules() ([]models.DailySchedule, error)
	DeleteSchedule(date string) error

	// Staged plan inputs awaiting finalize, keyed by YYYY-MM-DD
	StageInput(date string, input models.DayPlanInput) error
	GetStagedInput(date string) (models.DayPlanInput, error)
	ClearStagedInput(date string) error

	// Utils
	GetConfigPath() string
}
