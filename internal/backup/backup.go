package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/julianstephens/myday/internal/constants"
	"github.com/julianstephens/myday/internal/logger"
	"github.com/julianstephens/myday/internal/storage"
)

const (
	// BackupFileSuffix is the suffix for backup files
	BackupFileSuffix = ".json"
	// snapshotVersion is bumped when the snapshot layout changes
	snapshotVersion = 1
)

// SlotKeys are the keys captured by a snapshot.
var SlotKeys = []string{constants.EntriesSlotKey, constants.SettingsSlotKey}

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Size      int64

	seq int // collision counter from the file name
}

// Snapshot is the on-disk layout of a backup: the raw contents of every slot
// key that had data when it was taken.
type Snapshot struct {
	Version   int                        `json:"version"`
	CreatedAt time.Time                  `json:"created_at"`
	Slots     map[string]json.RawMessage `json:"slots"`
}

// Manager handles backup operations
type Manager struct {
	slot      storage.Slot
	backupDir string
}

// NewManager creates a backup manager that snapshots slot into backupDir.
func NewManager(slot storage.Slot, backupDir string) *Manager {
	return &Manager{
		slot:      slot,
		backupDir: backupDir,
	}
}

// DefaultDir returns the backup directory under a data directory.
func DefaultDir(dataDir string) string {
	return filepath.Join(dataDir, constants.BackupDirName)
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// ensureBackupDir creates the backup directory if it doesn't exist
func (m *Manager) ensureBackupDir() error {
	return os.MkdirAll(m.backupDir, 0700)
}

// CreateBackup creates a new snapshot of the slot
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// createBackup creates a new snapshot.
// skipRotation is set during restore so the pre-restore snapshot cannot rotate
// away the backup being restored.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	snap, err := m.capture()
	if err != nil {
		return "", err
	}
	if len(snap.Slots) == 0 {
		return "", errors.New("nothing to back up: storage is empty")
	}

	if err := m.ensureBackupDir(); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	backupPath, err := m.nextBackupPath(time.Now())
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(backupPath, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			// don't fail the backup itself
			logger.Warn("Failed to rotate old backups", "error", err)
		}
	}

	logger.Debug("Created backup", "path", backupPath, "slots", len(snap.Slots))
	return backupPath, nil
}

func (m *Manager) capture() (*Snapshot, error) {
	snap := &Snapshot{
		Version:   snapshotVersion,
		CreatedAt: time.Now().UTC(),
		Slots:     make(map[string]json.RawMessage),
	}
	for _, key := range SlotKeys {
		data, err := m.slot.Read(key)
		if err != nil {
			if errors.Is(err, storage.ErrSlotEmpty) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", key, err)
		}
		if !json.Valid(data) {
			return nil, fmt.Errorf("slot %s is corrupt; refusing to back it up", key)
		}
		snap.Slots[key] = json.RawMessage(data)
	}
	return snap, nil
}

// nextBackupPath picks a free file name, falling back from minute to second
// precision and then to a counter.
func (m *Manager) nextBackupPath(now time.Time) (string, error) {
	timestamp := now.Format("20060102-1504")
	backupPath := filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+BackupFileSuffix)
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return backupPath, nil
	}

	timestamp = now.Format("20060102-150405")
	backupPath = filepath.Join(m.backupDir, constants.BackupFilePrefix+timestamp+BackupFileSuffix)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			return backupPath, nil
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		backupPath = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, timestamp, counter, BackupFileSuffix))
	}
}

// ListBackups returns a list of all available backups, sorted by timestamp (newest first)
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, BackupFileSuffix) {
			continue
		}

		timestamp, seq, ok := parseBackupTimestamp(name)
		if !ok {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, BackupInfo{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
			seq:       seq,
		})
	}

	// Sort by timestamp, newest first
	sort.Slice(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].seq > backups[j].seq
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// parseBackupTimestamp reads the time out of names like
// myday-20240301-0930.json, myday-20240301-093015.json and
// myday-20240301-093015-2.json.
func parseBackupTimestamp(name string) (time.Time, int, bool) {
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), BackupFileSuffix)

	seq := 0
	parts := strings.Split(stamp, "-")
	if len(parts) > 2 {
		last := parts[len(parts)-1]
		if len(last) != 4 && len(last) != 6 {
			n, err := strconv.Atoi(last)
			if err != nil || n < 0 {
				return time.Time{}, 0, false
			}
			seq = n
			stamp = strings.Join(parts[:len(parts)-1], "-")
		}
	}

	if ts, err := time.ParseInLocation("20060102-1504", stamp, time.Local); err == nil {
		return ts, seq, true
	}
	if ts, err := time.ParseInLocation("20060102-150405", stamp, time.Local); err == nil {
		return ts, seq, true
	}
	return time.Time{}, 0, false
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) <= constants.MaxBackups {
		return nil
	}

	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}

	return nil
}

// RestoreBackup writes a snapshot's slots back to storage. The current state
// is snapshotted first when there is any. It returns the path of that
// pre-restore snapshot, or "" when there was nothing to save.
func (m *Manager) RestoreBackup(backupPath string) (string, error) {
	snap, err := ReadSnapshot(backupPath)
	if err != nil {
		return "", err
	}

	current, err := m.createBackup(true)
	if err != nil {
		// an empty store has nothing worth preserving
		if cur, capErr := m.capture(); capErr != nil || len(cur.Slots) > 0 {
			return "", fmt.Errorf("failed to backup current data before restore: %w", err)
		}
		current = ""
	}

	if err := m.slot.Init(); err != nil {
		return current, fmt.Errorf("failed to initialize storage: %w", err)
	}
	for _, key := range SlotKeys {
		data, ok := snap.Slots[key]
		if !ok {
			continue
		}
		if err := m.slot.Write(key, data); err != nil {
			return current, fmt.Errorf("failed to restore %s: %w", key, err)
		}
	}
	return current, nil
}

// ReadSnapshot loads and verifies a backup file.
func ReadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("backup file does not exist: %s", path)
		}
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported backup version %d", snap.Version)
	}
	if len(snap.Slots) == 0 {
		return nil, fmt.Errorf("backup file is corrupted or invalid: no slots")
	}
	return &snap, nil
}
