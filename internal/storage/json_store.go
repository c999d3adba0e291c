package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/acrispim/vidaplan/internal/models"
)

type Store struct {
	Version   int                             `json:"version"`
	Settings  Settings                        `json:"settings"`
	Schedules map[string]models.DailySchedule `json:"schedules"`
	Staged    map[string]models.DayPlanInput  `json:"staged"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Settings: Settings{
			Timezone:                "Local",
			DefaultWaterGoalMl:      2000,
			DefaultWaterIntervalMin: 60,
		},
		Schedules: make(map[string]models.DailySchedule),
		Staged:    make(map[string]models.DayPlanInput),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'vidaplan init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Schedules == nil {
		s.store.Schedules = make(map[string]models.DailySchedule)
	}
	if s.store.Staged == nil {
		s.store.Staged = make(map[string]models.DayPlanInput)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) SaveSchedule(schedule models.DailySchedule) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Schedules[schedule.Date] = schedule
	return s.save()
}

func (s *JSONStore) GetSchedule(date string) (models.DailySchedule, error) {
	if s.store == nil {
		return models.DailySchedule{}, fmt.Errorf("storage not loaded")
	}

	schedule, ok := s.store.Schedules[date]
	if !ok {
		return models.DailySchedule{}, fmt.Errorf("no schedule for date %s: %w", date, ErrNotFound)
	}

	return schedule, nil
}

func (s *JSONStore) GetAllSchedules() ([]models.DailySchedule, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	schedules := make([]models.DailySchedule, 0, len(s.store.Schedules))
	for _, schedule := range s.store.Schedules {
		schedules = append(schedules, schedule)
	}

	return schedules, nil
}

func (s *JSONStore) DeleteSchedule(date string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Schedules[date]; !ok {
		return fmt.Errorf("no schedule for date %s: %w", date, ErrNotFound)
	}

	delete(s.store.Schedules, date)
	return s.save()
}

func (s *JSONStore) StageInput(date string, input models.DayPlanInput) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Staged[date] = input
	return s.save()
}

func (s *JSONStore) GetStagedInput(date string) (models.DayPlanInput, error) {
	if s.store == nil {
		return models.DayPlanInput{}, fmt.Errorf("storage not loaded")
	}

	input, ok := s.store.Staged[date]
	if !ok {
		return models.DayPlanInput{}, fmt.Errorf("no staged plan for date %s: %w", date, ErrNotFound)
	}

	return input, nil
}

func (s *JSONStore) ClearStagedInput(date string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	delete(s.store.Staged, date)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
