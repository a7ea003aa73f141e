package backups

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/myday/internal/cli"
	"github.com/julianstephens/myday/internal/journal"
	"github.com/julianstephens/myday/internal/models"
	"github.com/julianstephens/myday/internal/storage"
)

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	dataDir := t.TempDir()
	slot := storage.NewFileSlot(dataDir)
	if err := slot.Init(); err != nil {
		t.Fatalf("failed to init slot: %v", err)
	}

	ctx := cli.NewContext(dataDir, "json", slot)
	ctx.Timezone = "UTC"
	out := &bytes.Buffer{}
	ctx.Out = out
	ctx.In = strings.NewReader("")
	return ctx, out
}

func writeText(t *testing.T, ctx *cli.Context, text string) {
	t.Helper()
	store := ctx.OpenJournal()
	store.UpdateContent("2024-05-01", text, models.MoodHappy, journal.KeepImage())
	if err := store.Commit(); err != nil {
		t.Fatal(err)
	}
}

func TestBackupCreateCmd_EmptyStore(t *testing.T) {
	ctx, _ := setupTestContext(t)
	if err := (&BackupCreateCmd{}).Run(ctx); err == nil {
		t.Error("expected an error backing up an empty store")
	}
}

func TestBackupCreateAndList(t *testing.T) {
	ctx, out := setupTestContext(t)
	writeText(t, ctx, "worth keeping")

	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !strings.Contains(out.String(), "✓ Backup created: myday-") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out.String(), "Available backups (1 total") {
		t.Errorf("output = %q", out.String())
	}
}

func TestBackupListCmd_None(t *testing.T) {
	ctx, out := setupTestContext(t)
	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestBackupRestoreCmd(t *testing.T) {
	ctx, out := setupTestContext(t)
	writeText(t, ctx, "original")

	path, err := ctx.BackupManager().CreateBackup()
	if err != nil {
		t.Fatal(err)
	}
	writeText(t, ctx, "changed later")

	if err := (&BackupRestoreCmd{BackupFile: filepath.Base(path), Yes: true}).Run(ctx); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if got := ctx.OpenJournal().Get("2024-05-01").Text; got != "original" {
		t.Errorf("Text after restore = %q", got)
	}
	if !strings.Contains(out.String(), "Previous data saved to:") {
		t.Errorf("output = %q", out.String())
	}
}

func TestBackupRestoreCmd_Confirmation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		restored bool
	}{
		{"yes", "y\n", true},
		{"full word", "YES\n", true},
		{"no", "n\n", false},
		{"blank", "\n", false},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupTestContext(t)
			writeText(t, ctx, "original")
			path, err := ctx.BackupManager().CreateBackup()
			if err != nil {
				t.Fatal(err)
			}
			writeText(t, ctx, "changed")

			ctx.In = strings.NewReader(tt.input)
			if err := (&BackupRestoreCmd{BackupFile: path}).Run(ctx); err != nil {
				t.Fatalf("restore failed: %v", err)
			}

			got := ctx.OpenJournal().Get("2024-05-01").Text
			if tt.restored && got != "original" {
				t.Errorf("expected restore, text = %q", got)
			}
			if !tt.restored && got != "changed" {
				t.Errorf("expected no restore, text = %q", got)
			}
		})
	}
}

func TestBackupRestoreCmd_Missing(t *testing.T) {
	ctx, _ := setupTestContext(t)
	if err := (&BackupRestoreCmd{BackupFile: "myday-nope.json", Yes: true}).Run(ctx); err == nil {
		t.Error("expected an error for a missing backup")
	}
}
