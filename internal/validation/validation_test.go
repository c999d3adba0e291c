package validation

import (
	"fmt"
	"testing"

	"github.com/acrispim/vidaplan/internal/models"
)

// fakeSource serves canned schedules keyed by date.
type fakeSource struct {
	schedules map[string]models.DailySchedule
}

func (f *fakeSource) GetSchedule(date string) (models.DailySchedule, error) {
	sched, ok := f.schedules[date]
	if !ok {
		return models.DailySchedule{}, fmt.Errorf("no schedule for %s", date)
	}
	return sched, nil
}

func TestValidate_NoConflictsOnDisjointDay(t *testing.T) {
	v := New()

	activities := []models.Activity{
		{ID: "a", Type: models.ActivitySleep, Name: "Sleep", StartTime: "22:00", EndTime: "06:00"},
		{ID: "b", Type: models.ActivityWork, Name: "Office", StartTime: "09:00", EndTime: "17:00"},
		{ID: "c", Type: models.ActivityMeal, Name: "Meal 1", StartTime: "18:00", EndTime: "18:30"},
	}

	conflicts, err := v.Validate(activities, "2026-03-14", nil)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(conflicts) != 0 {
		t.Fatalf("got %d conflicts, want 0", len(conflicts))
	}
}

func TestValidate_WrappedSleepDoesNotHitMorningJob(t *testing.T) {
	v := New()

	activities := []models.Activity{
		{ID: "a", Type: models.ActivitySleep, Name: "Sleep", StartTime: "22:00", EndTime: "06:00"},
		{ID: "b", Type: models.ActivityWork, Name: "Office", StartTime: "09:00", EndTime: "17:00"},
	}

	conflicts, err := v.Validate(activities, "2026-03-14", nil)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(conflicts) != 0 {
		t.Errorf("got %d conflicts, want 0: today's sleep ends before the job starts", len(conflicts))
	}
}

func TestValidate_OverlappingJobsProduceOneConflict(t *testing.T) {
	v := New()

	activities := []models.Activity{
		{ID: "a", Type: models.ActivityWork, Name: "Office", StartTime: "09:00", EndTime: "17:00"},
		{ID: "b", Type: models.ActivityStudy, Name: "Algorithms", StartTime: "10:00", EndTime: "12:00"},
	}

	conflicts, err := v.Validate(activities, "2026-03-14", nil)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want exactly 1", len(conflicts))
	}

	c := conflicts[0]
	if c.Kind != ConflictSameDay {
		t.Errorf("kind = %s, want %s", c.Kind, ConflictSameDay)
	}
	if c.Date != "2026-03-14" {
		t.Errorf("date = %s, want 2026-03-14", c.Date)
	}
	if c.ActivityA.ID != "a" || c.ActivityB.ID != "b" {
		t.Errorf("conflict pair = (%s, %s), want (a, b) in comparison order", c.ActivityA.ID, c.ActivityB.ID)
	}
	if c.OverlapMinutes != 120 {
		t.Errorf("overlap = %d minutes, want 120", c.OverlapMinutes)
	}
}

func TestValidate_TouchingWindowsDoNotConflict(t *testing.T) {
	v := New()

	activities := []models.Activity{
		{ID: "a", Type: models.ActivityWork, Name: "Office", StartTime: "09:00", EndTime: "12:00"},
		{ID: "b", Type: models.ActivityMeal, Name: "Meal 1", StartTime: "12:00", EndTime: "12:30"},
	}

	conflicts, err := v.Validate(activities, "2026-03-14", nil)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(conflicts) != 0 {
		t.Errorf("got %d conflicts, want 0 for back-to-back windows", len(conflicts))
	}
}

func TestValidate_PreviousSleepSpillsIntoEarlyActivity(t *testing.T) {
	v := New()

	source := &fakeSource{
		schedules: map[string]models.DailySchedule{
			"2026-03-13": {
				Date: "2026-03-13",
				Activities: []models.Activity{
					{ID: "prev-sleep", Type: models.ActivitySleep, Name: "Sleep", StartTime: "23:00", EndTime: "07:00"},
				},
			},
		},
	}

	activities := []models.Activity{
		{ID: "job", Type: models.ActivityWork, Name: "Early shift", StartTime: "06:30", EndTime: "14:00"},
	}

	conflicts, err := v.Validate(activities, "2026-03-14", source)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1 cross-midnight conflict", len(conflicts))
	}

	c := conflicts[0]
	if c.Kind != ConflictCrossMidnightSleep {
		t.Errorf("kind = %s, want %s", c.Kind, ConflictCrossMidnightSleep)
	}
	if c.ActivityA.ID != "prev-sleep" || c.ActivityB.ID != "job" {
		t.Errorf("conflict pair = (%s, %s), want (prev-sleep, job)", c.ActivityA.ID, c.ActivityB.ID)
	}
	// Sleep occupies [00:00, 07:00) of the current day; the shift starts 06:30.
	if c.OverlapMinutes != 30 {
		t.Errorf("overlap = %d minutes, want 30", c.OverlapMinutes)
	}
}

func TestValidate_PreviousSleepEndingSameDayDoesNotSpill(t *testing.T) {
	v := New()

	source := &fakeSource{
		schedules: map[string]models.DailySchedule{
			"2026-03-13": {
				Date: "2026-03-13",
				Activities: []models.Activity{
					// Nap entirely inside its own day.
					{ID: "prev-sleep", Type: models.ActivitySleep, Name: "Sleep", StartTime: "13:00", EndTime: "15:00"},
				},
			},
		},
	}

	activities := []models.Activity{
		{ID: "job", Type: models.ActivityWork, Name: "Early shift", StartTime: "06:30", EndTime: "14:00"},
	}

	conflicts, err := v.Validate(activities, "2026-03-14", source)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(conflicts) != 0 {
		t.Errorf("got %d conflicts, want 0", len(conflicts))
	}
}

func TestValidate_MissingPreviousScheduleIsNotAnError(t *testing.T) {
	v := New()

	source := &fakeSource{schedules: map[string]models.DailySchedule{}}

	activities := []models.Activity{
		{ID: "job", Type: models.ActivityWork, Name: "Early shift", StartTime: "06:30", EndTime: "14:00"},
	}

	conflicts, err := v.Validate(activities, "2026-03-14", source)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(conflicts) != 0 {
		t.Errorf("got %d conflicts, want 0", len(conflicts))
	}
}

func TestValidate_SameDayConflictsComeBeforeCrossDay(t *testing.T) {
	v := New()

	source := &fakeSource{
		schedules: map[string]models.DailySchedule{
			"2026-03-13": {
				Date: "2026-03-13",
				Activities: []models.Activity{
					{ID: "prev-sleep", Type: models.ActivitySleep, Name: "Sleep", StartTime: "23:00", EndTime: "07:00"},
				},
			},
		},
	}

	activities := []models.Activity{
		{ID: "a", Type: models.ActivityWork, Name: "Early shift", StartTime: "06:00", EndTime: "10:00"},
		{ID: "b", Type: models.ActivityStudy, Name: "Algorithms", StartTime: "09:00", EndTime: "11:00"},
	}

	conflicts, err := v.Validate(activities, "2026-03-14", source)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if len(conflicts) != 2 {
		t.Fatalf("got %d conflicts, want 2", len(conflicts))
	}
	if conflicts[0].Kind != ConflictSameDay {
		t.Errorf("first conflict kind = %s, want %s", conflicts[0].Kind, ConflictSameDay)
	}
	if conflicts[1].Kind != ConflictCrossMidnightSleep {
		t.Errorf("second conflict kind = %s, want %s", conflicts[1].Kind, ConflictCrossMidnightSleep)
	}
}
