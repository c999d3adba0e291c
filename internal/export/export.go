package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/acrispim/vidaplan/internal/models"
	"github.com/acrispim/vidaplan/internal/storage"
)

const (
	// MaxSnapshots is the maximum number of snapshots to keep
	MaxSnapshots = 14
	// SnapshotDirName is the name of the snapshot directory
	SnapshotDirName = "exports"
	// SnapshotFilePrefix is the prefix for snapshot files
	SnapshotFilePrefix = "vidaplan-"
	// SnapshotFileSuffix is the suffix for snapshot files
	SnapshotFileSuffix = ".json"
)

// Snapshot is the serialized form of the whole day-plan store. This is the
// blob a cloud mirror would synchronize; reconciliation across devices is
// a storage-boundary concern and never reaches the scheduling core.
type Snapshot struct {
	Version    int                    `json:"version"`
	ExportedAt string                 `json:"exported_at"` // RFC3339 timestamp
	Settings   storage.Settings       `json:"settings"`
	Schedules  []models.DailySchedule `json:"schedules"`
}

// Sink receives a serialized snapshot. Remote mirrors (a cloud drive
// client, say) implement this; the filesystem writer below is the only
// implementation shipped here.
type Sink interface {
	Write(name string, data []byte) error
}

// SnapshotInfo contains information about a snapshot file
type SnapshotInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles snapshot operations
type Manager struct {
	store       storage.Provider
	snapshotDir string
}

// NewManager creates a new snapshot manager rooted next to the config path
func NewManager(store storage.Provider, configPath string) *Manager {
	return &Manager{
		store:       store,
		snapshotDir: filepath.Join(filepath.Dir(configPath), SnapshotDirName),
	}
}

// GetSnapshotDir returns the snapshot directory path
func (m *Manager) GetSnapshotDir() string {
	return m.snapshotDir
}

// BuildSnapshot serializes the current store contents.
func (m *Manager) BuildSnapshot() ([]byte, error) {
	settings, err := m.store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	schedules, err := m.store.GetAllSchedules()
	if err != nil {
		return nil, fmt.Errorf("failed to read schedules: %w", err)
	}
	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].Date < schedules[j].Date
	})

	snapshot := Snapshot{
		Version:    1,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Settings:   settings,
		Schedules:  schedules,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	return data, nil
}

// CreateSnapshot writes a timestamped snapshot file and rotates old ones.
// Returns the path of the new snapshot.
func (m *Manager) CreateSnapshot() (string, error) {
	data, err := m.BuildSnapshot()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(m.snapshotDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	// Generate snapshot filename with timestamp; add a counter when a
	// snapshot with the same minute already exists.
	timestamp := time.Now().Format("20060102-1504")
	name := fmt.Sprintf("%s%s%s", SnapshotFilePrefix, timestamp, SnapshotFileSuffix)
	path := filepath.Join(m.snapshotDir, name)

	counter := 1
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		name = fmt.Sprintf("%s%s-%d%s", SnapshotFilePrefix, timestamp, counter, SnapshotFileSuffix)
		path = filepath.Join(m.snapshotDir, name)
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique snapshot filename")
		}
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	if err := m.rotateSnapshots(); err != nil {
		// Rotation failure should not fail the export itself.
		fmt.Fprintf(os.Stderr, "Warning: failed to rotate old snapshots: %v\n", err)
	}

	return path, nil
}

// WriteTo serializes the store and hands the blob to an external sink.
func (m *Manager) WriteTo(sink Sink) error {
	data, err := m.BuildSnapshot()
	if err != nil {
		return err
	}
	name := fmt.Sprintf("%s%s%s", SnapshotFilePrefix, time.Now().Format("20060102-150405"), SnapshotFileSuffix)
	return sink.Write(name, data)
}

// ListSnapshots returns all snapshots sorted newest first
func (m *Manager) ListSnapshots() ([]SnapshotInfo, error) {
	if _, err := os.Stat(m.snapshotDir); os.IsNotExist(err) {
		return []SnapshotInfo{}, nil
	}

	entries, err := os.ReadDir(m.snapshotDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot directory: %w", err)
	}

	var snapshots []SnapshotInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, SnapshotFilePrefix) || !strings.HasSuffix(name, SnapshotFileSuffix) {
			continue
		}

		timestampStr := strings.TrimPrefix(name, SnapshotFilePrefix)
		timestampStr = strings.TrimSuffix(timestampStr, SnapshotFileSuffix)
		// Strip a counter suffix if present
		if parts := strings.Split(timestampStr, "-"); len(parts) == 3 {
			timestampStr = strings.Join(parts[:2], "-")
		}

		timestamp, err := time.Parse("20060102-1504", timestampStr)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", timestampStr)
			if err != nil {
				continue
			}
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		snapshots = append(snapshots, SnapshotInfo{
			Path:      filepath.Join(m.snapshotDir, name),
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Timestamp.After(snapshots[j].Timestamp)
	})

	return snapshots, nil
}

// rotateSnapshots removes snapshots beyond the retention limit
func (m *Manager) rotateSnapshots() error {
	snapshots, err := m.ListSnapshots()
	if err != nil {
		return err
	}

	if len(snapshots) <= MaxSnapshots {
		return nil
	}

	for i := MaxSnapshots; i < len(snapshots); i++ {
		if err := os.Remove(snapshots[i].Path); err != nil {
			return fmt.Errorf("failed to remove old snapshot %s: %w", snapshots[i].Path, err)
		}
	}

	return nil
}
