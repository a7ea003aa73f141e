package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/myday/internal/constants"
	"github.com/julianstephens/myday/internal/models"
	"github.com/julianstephens/myday/internal/storage"
)

func setupTestSlot(t *testing.T) (*storage.Adapter, *Manager) {
	t.Helper()
	tempDir := t.TempDir()

	slot := storage.NewFileSlot(filepath.Join(tempDir, "data"))
	adapter := storage.NewAdapter(slot)
	adapter.Save(models.EntryCollection{
		"2024-03-01": {Date: "2024-03-01", Text: "first", Mood: models.MoodHappy, Todos: []models.TodoItem{}},
	})
	if err := adapter.SaveSettings(models.Settings{Theme: "sunset-glow", Timezone: "UTC"}); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	return adapter, NewManager(slot, filepath.Join(tempDir, constants.BackupDirName))
}

func TestCreateBackup(t *testing.T) {
	_, mgr := setupTestSlot(t)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		t.Errorf("backup file was not created: %s", backupPath)
	}
	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, BackupFileSuffix) {
		t.Errorf("unexpected backup name: %s", name)
	}

	snap, err := ReadSnapshot(backupPath)
	if err != nil {
		t.Fatalf("ReadSnapshot failed: %v", err)
	}
	for _, key := range SlotKeys {
		if _, ok := snap.Slots[key]; !ok {
			t.Errorf("snapshot is missing slot %s", key)
		}
	}
}

func TestCreateBackupEmptyStorage(t *testing.T) {
	tempDir := t.TempDir()
	mgr := NewManager(storage.NewFileSlot(filepath.Join(tempDir, "data")), filepath.Join(tempDir, "backups"))

	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup should fail when storage is empty")
	}
}

func TestCreateBackupRefusesCorruptSlot(t *testing.T) {
	tempDir := t.TempDir()
	slot := storage.NewFileSlot(filepath.Join(tempDir, "data"))
	if err := slot.Write(constants.EntriesSlotKey, []byte("{broken")); err != nil {
		t.Fatal(err)
	}
	mgr := NewManager(slot, filepath.Join(tempDir, "backups"))

	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("CreateBackup should refuse a corrupt slot")
	}
}

func TestMultipleBackupsGetUniqueNames(t *testing.T) {
	_, mgr := setupTestSlot(t)

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		path, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup %d failed: %v", i, err)
		}
		if seen[path] {
			t.Fatalf("backup path reused: %s", path)
		}
		seen[path] = true
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Errorf("expected 3 backups, got %d", len(backups))
	}
}

func TestListBackups(t *testing.T) {
	_, mgr := setupTestSlot(t)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups before creating one, got %d", len(backups))
	}

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	names := []string{
		"myday-20240101-0900.json",
		"myday-20240301-093015.json",
		"myday-20240301-093015-2.json",
		"myday-notatime.json",
		"other-20240101-0900.json",
		"myday-20240101-0900.db",
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}

	// newest first
	if filepath.Base(backups[0].Path) != "myday-20240301-093015-2.json" {
		t.Errorf("newest backup = %s", filepath.Base(backups[0].Path))
	}
	if filepath.Base(backups[2].Path) != "myday-20240101-0900.json" {
		t.Errorf("oldest backup = %s", filepath.Base(backups[2].Path))
	}
	want := time.Date(2024, 3, 1, 9, 30, 15, 0, time.Local)
	if !backups[1].Timestamp.Equal(want) {
		t.Errorf("timestamp = %v, want %v", backups[1].Timestamp, want)
	}
}

func TestRotateBackups(t *testing.T) {
	_, mgr := setupTestSlot(t)

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	total := constants.MaxBackups + 5
	for i := 0; i < total; i++ {
		name := constants.BackupFilePrefix + base.Add(time.Duration(i)*time.Hour).Format("20060102-1504") + BackupFileSuffix
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	if err := mgr.rotateBackups(); err != nil {
		t.Fatalf("rotateBackups failed: %v", err)
	}

	backups, _ := mgr.ListBackups()
	if len(backups) != constants.MaxBackups {
		t.Fatalf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}
	oldestKept := base.Add(time.Duration(total-constants.MaxBackups) * time.Hour)
	if !backups[len(backups)-1].Timestamp.Equal(oldestKept) {
		t.Errorf("oldest kept = %v, want %v", backups[len(backups)-1].Timestamp, oldestKept)
	}
}

func TestRestoreBackup(t *testing.T) {
	adapter, mgr := setupTestSlot(t)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// change data after the backup
	adapter.Save(models.EntryCollection{
		"2024-03-02": {Date: "2024-03-02", Text: "second", Mood: models.MoodSad, Todos: []models.TodoItem{}},
	})
	if err := adapter.SaveSettings(models.Settings{Theme: "cosmic-star", Timezone: "UTC"}); err != nil {
		t.Fatal(err)
	}

	current, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if current == "" || current == backupPath {
		t.Errorf("expected a distinct pre-restore snapshot, got %q", current)
	}

	entries := adapter.Load()
	if _, ok := entries["2024-03-01"]; !ok || len(entries) != 1 {
		t.Errorf("restored entries = %v", entries)
	}
	if got := adapter.LoadSettings().Theme; got != "sunset-glow" {
		t.Errorf("restored theme = %q, want sunset-glow", got)
	}

	// the pre-restore snapshot holds the state that was replaced
	snap, err := ReadSnapshot(current)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(snap.Slots[constants.EntriesSlotKey]), "second") {
		t.Error("pre-restore snapshot does not contain the replaced data")
	}
}

func TestRestoreIntoEmptyStorage(t *testing.T) {
	_, mgr := setupTestSlot(t)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	tempDir := t.TempDir()
	fresh := storage.NewFileSlot(filepath.Join(tempDir, "data"))
	freshMgr := NewManager(fresh, filepath.Join(tempDir, "backups"))

	current, err := freshMgr.RestoreBackup(backupPath)
	if err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if current != "" {
		t.Errorf("no pre-restore snapshot expected for empty storage, got %q", current)
	}
	if len(storage.NewAdapter(fresh).Load()) != 1 {
		t.Error("entries not restored into empty storage")
	}
}

func TestRestoreBackupInvalid(t *testing.T) {
	_, mgr := setupTestSlot(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{name: "garbage", content: "not json"},
		{name: "wrong version", content: `{"version":99,"slots":{"gemini-journal-entries":{}}}`},
		{name: "no slots", content: `{"version":1,"slots":{}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := mgr.RestoreBackup(path); err == nil {
				t.Error("RestoreBackup should reject an invalid snapshot")
			}
		})
	}

	if _, err := mgr.RestoreBackup(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("RestoreBackup should fail for a missing file")
	}
}
