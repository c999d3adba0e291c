package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/acrispim/vidaplan/internal/models"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	timezone TEXT NOT NULL DEFAULT 'Local',
	default_water_goal_ml INTEGER NOT NULL DEFAULT 2000,
	default_water_interval_min INTEGER NOT NULL DEFAULT 60
);

CREATE TABLE IF NOT EXISTS schedules (
	date TEXT PRIMARY KEY,
	day_name TEXT NOT NULL,
	formatted_date TEXT NOT NULL,
	plan_data TEXT NOT NULL,
	created_at TEXT NOT NULL,
	last_saved TEXT NOT NULL,
	is_planned INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS activities (
	schedule_date TEXT NOT NULL,
	position INTEGER NOT NULL,
	id TEXT NOT NULL,
	type TEXT NOT NULL,
	name TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	exercise_type TEXT NOT NULL DEFAULT '',
	water_goal_ml INTEGER NOT NULL DEFAULT 0,
	water_interval_min INTEGER NOT NULL DEFAULT 0,
	simple_tracking TEXT,
	water_tracking TEXT,
	original_time TEXT,
	time_adjusted INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (schedule_date, position),
	FOREIGN KEY (schedule_date) REFERENCES schedules(date) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS staged_inputs (
	date TEXT PRIMARY KEY,
	input TEXT NOT NULL
);
`

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed default settings once
	if _, err := s.db.Exec("INSERT OR IGNORE INTO settings (id) VALUES (1)"); err != nil {
		return fmt.Errorf("failed to seed default settings: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'vidaplan init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	var settings Settings
	err := s.db.QueryRow(
		"SELECT timezone, default_water_goal_ml, default_water_interval_min FROM settings WHERE id = 1",
	).Scan(&settings.Timezone, &settings.DefaultWaterGoalMl, &settings.DefaultWaterIntervalMin)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO settings (id, timezone, default_water_goal_ml, default_water_interval_min) VALUES (1, ?, ?, ?)",
		settings.Timezone, settings.DefaultWaterGoalMl, settings.DefaultWaterIntervalMin,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// SaveSchedule replaces the whole entry for the schedule's date inside a
// single transaction, so a finalize commit is all-or-nothing.
func (s *SQLiteStore) SaveSchedule(schedule models.DailySchedule) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	planData, err := json.Marshal(schedule.PlanData)
	if err != nil {
		return fmt.Errorf("failed to serialize plan data: %w", err)
	}

	_, err = tx.Exec(
		"INSERT OR REPLACE INTO schedules (date, day_name, formatted_date, plan_data, created_at, last_saved, is_planned) VALUES (?, ?, ?, ?, ?, ?, ?)",
		schedule.Date, schedule.DayName, schedule.FormattedDate, string(planData),
		schedule.CreatedAt, schedule.LastSaved, boolToInt(schedule.IsPlanned),
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM activities WHERE schedule_date = ?", schedule.Date); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO activities (
			schedule_date, position, id, type, name, start_time, end_time,
			notes, exercise_type, water_goal_ml, water_interval_min,
			simple_tracking, water_tracking, original_time, time_adjusted
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, activity := range schedule.Activities {
		simpleTracking, err := marshalNullable(activity.SimpleTracking)
		if err != nil {
			return err
		}
		waterTracking, err := marshalNullable(activity.WaterTracking)
		if err != nil {
			return err
		}
		originalTime, err := marshalNullable(activity.OriginalTime)
		if err != nil {
			return err
		}

		_, err = stmt.Exec(
			schedule.Date, i, activity.ID, string(activity.Type), activity.Name,
			activity.StartTime, activity.EndTime, activity.Notes, activity.ExerciseType,
			activity.WaterGoalMl, activity.WaterIntervalMin,
			simpleTracking, waterTracking, originalTime, boolToInt(activity.TimeAdjusted),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetSchedule(date string) (models.DailySchedule, error) {
	var schedule models.DailySchedule
	var planData string
	var isPlanned int

	err := s.db.QueryRow(
		"SELECT date, day_name, formatted_date, plan_data, created_at, last_saved, is_planned FROM schedules WHERE date = ?",
		date,
	).Scan(&schedule.Date, &schedule.DayName, &schedule.FormattedDate, &planData,
		&schedule.CreatedAt, &schedule.LastSaved, &isPlanned)
	if err == sql.ErrNoRows {
		return models.DailySchedule{}, fmt.Errorf("no schedule for date %s: %w", date, ErrNotFound)
	}
	if err != nil {
		return models.DailySchedule{}, fmt.Errorf("failed to read schedule: %w", err)
	}

	if err := json.Unmarshal([]byte(planData), &schedule.PlanData); err != nil {
		return models.DailySchedule{}, fmt.Errorf("failed to parse plan data: %w", err)
	}
	schedule.IsPlanned = isPlanned != 0

	activities, err := s.loadActivities(date)
	if err != nil {
		return models.DailySchedule{}, err
	}
	schedule.Activities = activities

	return schedule, nil
}

func (s *SQLiteStore) loadActivities(date string) ([]models.Activity, error) {
	rows, err := s.db.Query(`
		SELECT id, type, name, start_time, end_time, notes, exercise_type,
			water_goal_ml, water_interval_min,
			simple_tracking, water_tracking, original_time, time_adjusted
		FROM activities WHERE schedule_date = ? ORDER BY position`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to read activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		var actType string
		var simpleTracking, waterTracking, originalTime sql.NullString
		var timeAdjusted int

		err := rows.Scan(&a.ID, &actType, &a.Name, &a.StartTime, &a.EndTime,
			&a.Notes, &a.ExerciseType, &a.WaterGoalMl, &a.WaterIntervalMin,
			&simpleTracking, &waterTracking, &originalTime, &timeAdjusted)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}

		a.Type = models.ActivityType(actType)
		a.TimeAdjusted = timeAdjusted != 0

		if simpleTracking.Valid {
			a.SimpleTracking = &models.SimpleTracking{}
			if err := json.Unmarshal([]byte(simpleTracking.String), a.SimpleTracking); err != nil {
				return nil, fmt.Errorf("failed to parse tracking state: %w", err)
			}
		}
		if waterTracking.Valid {
			a.WaterTracking = &models.WaterTracking{}
			if err := json.Unmarshal([]byte(waterTracking.String), a.WaterTracking); err != nil {
				return nil, fmt.Errorf("failed to parse water tracking: %w", err)
			}
		}
		if originalTime.Valid {
			a.OriginalTime = &models.TimeWindow{}
			if err := json.Unmarshal([]byte(originalTime.String), a.OriginalTime); err != nil {
				return nil, fmt.Errorf("failed to parse original time: %w", err)
			}
		}

		activities = append(activities, a)
	}

	return activities, rows.Err()
}

func (s *SQLiteStore) GetAllSchedules() ([]models.DailySchedule, error) {
	rows, err := s.db.Query("SELECT date FROM schedules ORDER BY date")
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	schedules := make([]models.DailySchedule, 0, len(dates))
	for _, date := range dates {
		schedule, err := s.GetSchedule(date)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	return schedules, nil
}

func (s *SQLiteStore) DeleteSchedule(date string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM activities WHERE schedule_date = ?", date); err != nil {
		return err
	}

	result, err := tx.Exec("DELETE FROM schedules WHERE date = ?", date)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no schedule for date %s: %w", date, ErrNotFound)
	}

	return tx.Commit()
}

func (s *SQLiteStore) StageInput(date string, input models.DayPlanInput) error {
	data, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to serialize staged plan: %w", err)
	}

	_, err = s.db.Exec("INSERT OR REPLACE INTO staged_inputs (date, input) VALUES (?, ?)", date, string(data))
	if err != nil {
		return fmt.Errorf("failed to stage plan: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetStagedInput(date string) (models.DayPlanInput, error) {
	var data string
	err := s.db.QueryRow("SELECT input FROM staged_inputs WHERE date = ?", date).Scan(&data)
	if err == sql.ErrNoRows {
		return models.DayPlanInput{}, fmt.Errorf("no staged plan for date %s: %w", date, ErrNotFound)
	}
	if err != nil {
		return models.DayPlanInput{}, fmt.Errorf("failed to read staged plan: %w", err)
	}

	var input models.DayPlanInput
	if err := json.Unmarshal([]byte(data), &input); err != nil {
		return models.DayPlanInput{}, fmt.Errorf("failed to parse staged plan: %w", err)
	}
	return input, nil
}

func (s *SQLiteStore) ClearStagedInput(date string) error {
	_, err := s.db.Exec("DELETE FROM staged_inputs WHERE date = ?", date)
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func marshalNullable(v interface{}) (sql.NullString, error) {
	if v == nil {
		return sql.NullString{}, nil
	}
	// Typed nil pointers also mean "absent".
	switch p := v.(type) {
	case *models.SimpleTracking:
		if p == nil {
			return sql.NullString{}, nil
		}
	case *models.WaterTracking:
		if p == nil {
			return sql.NullString{}, nil
		}
	case *models.TimeWindow:
		if p == nil {
			return sql.NullString{}, nil
		}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
