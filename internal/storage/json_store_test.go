package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSlotReadWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	slot := NewFileSlot(dir)

	if _, err := slot.Read("entries"); !errors.Is(err, ErrSlotEmpty) {
		t.Fatalf("Read() on missing file error = %v, want ErrSlotEmpty", err)
	}

	if err := slot.Write("entries", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	got, err := slot.Read("entries")
	if err != nil || string(got) != `{"a":1}` {
		t.Fatalf("Read() = %q, %v", got, err)
	}

	info, err := os.Stat(filepath.Join(dir, "entries.json"))
	if err != nil {
		t.Fatalf("slot file missing: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("slot file mode = %v, want 0600", info.Mode().Perm())
	}

	// no temp files left behind
	matches, _ := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if len(matches) != 0 {
		t.Errorf("temp files left behind: %v", matches)
	}
}

func TestFileSlotRejectsBadKeys(t *testing.T) {
	slot := NewFileSlot(t.TempDir())
	for _, key := range []string{"", "..", "../escape", `a\b`} {
		if err := slot.Write(key, []byte("x")); err == nil {
			t.Errorf("Write(%q) should fail", key)
		}
	}
}
