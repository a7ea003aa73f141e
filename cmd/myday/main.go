package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-homedir"

	"github.com/julianstephens/myday/internal/cli"
	"github.com/julianstephens/myday/internal/cli/backups"
	"github.com/julianstephens/myday/internal/cli/entries"
	"github.com/julianstephens/myday/internal/cli/insights"
	"github.com/julianstephens/myday/internal/cli/settings"
	"github.com/julianstephens/myday/internal/cli/system"
	"github.com/julianstephens/myday/internal/cli/todos"
	"github.com/julianstephens/myday/internal/constants"
	"github.com/julianstephens/myday/internal/datekey"
	apperrors "github.com/julianstephens/myday/internal/errors"
	"github.com/julianstephens/myday/internal/gateway"
	"github.com/julianstephens/myday/internal/logger"
	"github.com/julianstephens/myday/internal/storage"
)

var CLI struct {
	Version  kong.VersionFlag
	DataDir  string        `help:"Directory holding the journal, settings, backups and logs." default:"~/.config/myday" env:"MYDAY_DATA_DIR"`
	Backend  string        `help:"Storage backend: json, sqlite or diskv." enum:"json,sqlite,diskv" default:"json" env:"MYDAY_BACKEND"`
	Timezone string        `help:"Timezone that decides which day 'today' is. Overrides the saved setting." env:"MYDAY_TIMEZONE"`
	Verbose  bool          `name:"debug" help:"Log debug output to stderr."`
	APIKey   string        `name:"api-key" help:"Gemini API key. Falls back to GEMINI_API_KEY, API_KEY, then the OS keyring."`
	Model    string        `help:"Gemini model used for insights and tips." default:"${model}" env:"MYDAY_MODEL"`
	Timeout  time.Duration `help:"Give up on a gateway call after this long (0 waits indefinitely)." default:"0s"`
	BaseURL  string        `name:"gemini-base-url" hidden:"" env:"MYDAY_GEMINI_BASE_URL"`

	Show    entries.ShowCmd   `cmd:"" help:"Show a day's entry." default:"withargs"`
	Write   entries.WriteCmd  `cmd:"" help:"Write or update a day's entry."`
	List    entries.ListCmd   `cmd:"" help:"List entries by date."`
	Import  entries.ImportCmd `cmd:"" help:"Import an exported entry collection."`
	Prompt  entries.PromptCmd `cmd:"" help:"Show a writing prompt and a quote."`
	Todo    struct {
		Add    todos.TodoAddCmd    `cmd:"" help:"Add a to-do."`
		Toggle todos.TodoToggleCmd `cmd:"" help:"Mark a to-do done or open."`
		Delete todos.TodoDeleteCmd `cmd:"" help:"Delete a to-do."`
		List   todos.TodoListCmd   `cmd:"" help:"List a day's to-dos." default:"withargs"`
	} `cmd:"" help:"Manage a day's to-dos."`
	Insights insights.InsightsCmd `cmd:"" help:"Analyze a day's entry with Gemini."`
	Suggest  insights.SuggestCmd  `cmd:"" help:"Get wellness tips for a day's entry."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive journal."`
	Init     system.InitCmd       `cmd:"" help:"Initialize myday storage."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Debug    system.DebugCmd      `cmd:"" help:"Debug commands for troubleshooting."`
	Key      struct {
		Set    system.KeySetCmd    `cmd:"" help:"Store the Gemini API key in the OS keyring."`
		Delete system.KeyDeleteCmd `cmd:"" help:"Remove the API key from the OS keyring."`
		Status system.KeyStatusCmd `cmd:"" help:"Show which API key will be used." default:"1"`
	} `cmd:"" help:"Manage the Gemini API key."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage journal backups."`
	Theme    settings.ThemeCmd    `cmd:"" help:"Show or change the color theme."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("A daily journal with to-dos and AI reflections"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": constants.Version,
			"model":   constants.DefaultModel,
		},
	)

	dataDir, err := homedir.Expand(CLI.DataDir)
	if err != nil {
		apperrors.Fatal(fmt.Errorf("invalid data directory: %w", err))
	}

	if err := logger.Init(logger.Config{Debug: CLI.Verbose, DataDir: dataDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	if cwd, err := os.Getwd(); err == nil {
		gateway.LoadDotEnv(cwd, dataDir)
	} else {
		gateway.LoadDotEnv(dataDir)
	}

	slot, err := storage.NewSlot(CLI.Backend, dataDir)
	if err != nil {
		apperrors.Fatal(err)
	}
	defer slot.Close()

	appCtx := cli.NewContext(dataDir, CLI.Backend, slot)
	if CLI.Timezone != "" {
		if !datekey.ValidateTimezone(CLI.Timezone) {
			apperrors.Fatal(fmt.Errorf("invalid timezone %q", CLI.Timezone))
		}
		appCtx.Timezone = CLI.Timezone
	}
	appCtx.APIKey = CLI.APIKey
	appCtx.Interactive = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	appCtx.NewGateway = func() (gateway.Gateway, error) {
		client, err := gateway.New(gateway.Config{
			APIKey:  CLI.APIKey,
			Model:   CLI.Model,
			BaseURL: CLI.BaseURL,
			Timeout: CLI.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	appCtx.Ctx = runCtx

	err = kctx.Run(appCtx)
	stop()
	if err != nil {
		slot.Close()
		apperrors.Fatal(err)
	}
}
