package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/myday/internal/cli"
	"github.com/julianstephens/myday/internal/constants"
	"github.com/julianstephens/myday/internal/models"
	"github.com/julianstephens/myday/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Back up existing data, then start over with an empty journal and default settings."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Slot.Init(); err != nil {
		return err
	}

	_, err := ctx.Slot.Read(constants.EntriesSlotKey)
	hasData := err == nil
	if err != nil && !errors.Is(err, storage.ErrSlotEmpty) {
		return fmt.Errorf("failed to access existing journal: %w", err)
	}

	if hasData && !c.Force {
		ctx.Printf("myday storage already initialized at: %s\n", ctx.Slot.GetConfigPath())
		return nil
	}

	if hasData {
		backupPath, err := ctx.BackupManager().CreateBackup()
		if err != nil {
			return fmt.Errorf("refusing to reset without a backup: %w", err)
		}
		ctx.Printf("Backed up existing data to: %s\n", backupPath)
	}

	// an explicit empty collection marks the journal as initialized
	if err := ctx.Slot.Write(constants.EntriesSlotKey, []byte("{}")); err != nil {
		return fmt.Errorf("failed to initialize journal: %w", err)
	}
	settings := models.DefaultSettings()
	if err := ctx.Adapter.SaveSettings(settings); err != nil {
		return err
	}
	ctx.Settings = settings

	ctx.Printf("Initialized myday storage at: %s\n", ctx.Slot.GetConfigPath())
	return nil
}
