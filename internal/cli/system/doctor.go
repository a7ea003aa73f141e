package system

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/goccy/go-json"

	"github.com/julianstephens/myday/internal/cli"
	"github.com/julianstephens/myday/internal/constants"
	"github.com/julianstephens/myday/internal/datekey"
	"github.com/julianstephens/myday/internal/gateway"
	"github.com/julianstephens/myday/internal/keyring"
	"github.com/julianstephens/myday/internal/logger"
	"github.com/julianstephens/myday/internal/models"
	"github.com/julianstephens/myday/internal/storage"
)

type DoctorCmd struct{}

type check struct {
	name     string
	run      func(ctx *cli.Context) error
	warnOnly bool
	needsDB  bool // skipped when storage is unreachable
	gatesDB  bool // failure marks storage unreachable
}

var checks = []check{
	{name: "Storage reachable", run: checkStorageReachable, gatesDB: true},
	{name: "Entry data", run: checkEntries, needsDB: true},
	{name: "Settings", run: checkSettings, needsDB: true},
	{name: "Clock/timezone", run: checkClockTimezone},
	{name: "Log directory", run: checkLogDir, warnOnly: true},
	{name: "Backups present", run: checkBackupsPresent, warnOnly: true},
	{name: "OS keyring", run: checkKeyring, warnOnly: true},
	{name: "API key", run: checkAPIKey, warnOnly: true},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	dbReachable := true

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}

		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
			if c.gatesDB {
				dbReachable = false
			}
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *cli.Context) error {
	if err := ctx.Slot.Init(); err != nil {
		return fmt.Errorf("failed to open storage at %s: %w", ctx.Slot.GetConfigPath(), err)
	}
	if _, err := ctx.Slot.Read(constants.EntriesSlotKey); err != nil && !errors.Is(err, storage.ErrSlotEmpty) {
		return fmt.Errorf("failed to read journal: %w", err)
	}
	return nil
}

func checkEntries(ctx *cli.Context) error {
	data, err := ctx.Slot.Read(constants.EntriesSlotKey)
	if errors.Is(err, storage.ErrSlotEmpty) {
		return nil
	}
	if err != nil {
		return err
	}

	var raw map[string]models.JournalEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("journal is not valid JSON: %w", err)
	}

	var problems []string
	for key, e := range raw {
		if !datekey.Valid(key) {
			problems = append(problems, fmt.Sprintf("invalid date key %q", key))
			continue
		}
		if e.Date != key {
			problems = append(problems, fmt.Sprintf("%s: date field is %q", key, e.Date))
		}
		if e.Mood != "" && !e.Mood.Valid() {
			problems = append(problems, fmt.Sprintf("%s: unknown mood %q", key, e.Mood))
		}
		seen := make(map[string]bool)
		for _, t := range e.Todos {
			switch {
			case models.ValidateTodoText(t.Text) != nil:
				problems = append(problems, fmt.Sprintf("%s: blank to-do %q", key, t.ID))
			case t.ID == "":
				problems = append(problems, fmt.Sprintf("%s: to-do without an ID", key))
			case seen[t.ID]:
				problems = append(problems, fmt.Sprintf("%s: duplicate to-do ID %s", key, t.ID))
			}
			seen[t.ID] = true
		}
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return fmt.Errorf("%d problem(s), first: %s (loading repairs these; records with bad date keys are dropped)",
			len(problems), problems[0])
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	data, err := ctx.Slot.Read(constants.SettingsSlotKey)
	if errors.Is(err, storage.ErrSlotEmpty) {
		return nil
	}
	if err != nil {
		return err
	}

	var settings models.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("settings are not valid JSON: %w", err)
	}
	if _, ok := models.Themes[settings.Theme]; !ok {
		return fmt.Errorf("unknown theme %q", settings.Theme)
	}
	if !datekey.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("invalid timezone %q", settings.Timezone)
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if _, err := datekey.LoadLocation(ctx.Timezone); err != nil {
		return err
	}
	return nil
}

func checkLogDir(ctx *cli.Context) error {
	dir := logger.LogDir(ctx.DataDir)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("log directory %s is missing", dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	backups, err := ctx.BackupManager().ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'myday backup create'")
	}
	return nil
}

func checkKeyring(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	return nil
}

func checkAPIKey(ctx *cli.Context) error {
	if _, _, err := gateway.ResolveAPIKey(ctx.APIKey); err != nil {
		return fmt.Errorf("no API key found; insights and tips are disabled. Use 'myday key set' or %s", constants.EnvAPIKey)
	}
	return nil
}
