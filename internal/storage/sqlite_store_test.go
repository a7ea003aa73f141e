package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func setupTestSQLiteSlot(t *testing.T) *SQLiteSlot {
	t.Helper()
	slot := NewSQLiteSlot(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() {
		if err := slot.Close(); err != nil {
			t.Errorf("failed to close slot: %v", err)
		}
	})
	return slot
}

func TestSQLiteSlotReadDoesNotCreateDatabase(t *testing.T) {
	slot := setupTestSQLiteSlot(t)

	if _, err := slot.Read("entries"); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("Read() error = %v, want ErrSlotEmpty", err)
	}
	if _, err := os.Stat(slot.GetConfigPath()); !os.IsNotExist(err) {
		t.Error("Read() created the database file")
	}
}

func TestSQLiteSlotReplace(t *testing.T) {
	slot := setupTestSQLiteSlot(t)

	if err := slot.Write("entries", []byte("one")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := slot.Write("entries", []byte("two")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	got, err := slot.Read("entries")
	if err != nil || string(got) != "two" {
		t.Fatalf("Read() = %q, %v; want %q", got, err, "two")
	}

	var rows int
	if err := slot.db.QueryRow("SELECT count(*) FROM slots").Scan(&rows); err != nil {
		t.Fatal(err)
	}
	if rows != 1 {
		t.Errorf("slots table has %d rows, want 1", rows)
	}

	if _, err := slot.Read("settings"); !errors.Is(err, ErrSlotEmpty) {
		t.Errorf("Read() of unwritten key error = %v, want ErrSlotEmpty", err)
	}
}

func TestTableExists(t *testing.T) {
	t.Run("table exists", func(t *testing.T) {
		slot := setupTestSQLiteSlot(t)
		if err := slot.Init(); err != nil {
			t.Fatalf("Init() error: %v", err)
		}

		exists, err := slot.tableExists("SLOTS")
		if err != nil {
			t.Errorf("tableExists() returned unexpected error: %v", err)
		}
		if !exists {
			t.Error("tableExists() = false, want true for existing table")
		}
	})

	t.Run("table does not exist", func(t *testing.T) {
		slot := setupTestSQLiteSlot(t)
		if err := slot.open(); err != nil {
			t.Fatal(err)
		}

		exists, err := slot.tableExists("nonexistent_table")
		if err != nil {
			t.Errorf("tableExists() returned unexpected error: %v", err)
		}
		if exists {
			t.Error("tableExists() = true, want false for nonexistent table")
		}
	})
}

func TestSQLiteSlotEmptyDatabaseFile(t *testing.T) {
	slot := setupTestSQLiteSlot(t)
	// An existing but empty file is a valid, table-less SQLite database.
	if err := os.WriteFile(slot.GetConfigPath(), nil, 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := slot.Read("entries"); !errors.Is(err, ErrSlotEmpty) {
		t.Errorf("Read() error = %v, want ErrSlotEmpty", err)
	}
}
