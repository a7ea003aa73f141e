package system

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/julianstephens/myday/internal/cli"
)

type DebugCmd struct {
	DBPath       *DebugDBPathCmd       `cmd:"" help:"Show storage path and backend."`
	DumpEntry    *DebugDumpEntryCmd    `cmd:"" help:"Dump an entry as JSON."`
	DumpSettings *DebugDumpSettingsCmd `cmd:"" help:"Dump settings as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(ctx, map[string]string{
		"path":     ctx.Slot.GetConfigPath(),
		"backend":  ctx.Backend,
		"data_dir": ctx.DataDir,
	})
}

type DebugDumpEntryCmd struct {
	Date string `arg:"" help:"Date of the entry to dump (YYYY-MM-DD or 'today')."`
}

func (cmd *DebugDumpEntryCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(cmd.Date)
	if err != nil {
		return err
	}

	store := ctx.OpenJournal()
	if !store.Has(date) {
		return fmt.Errorf("no entry found for date: %s", date)
	}
	return printJSON(ctx, store.Get(date))
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	return printJSON(ctx, ctx.Adapter.LoadSettings())
}

func printJSON(ctx *cli.Context, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	ctx.Println(string(jsonBytes))
	return nil
}
