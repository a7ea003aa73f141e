package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/myday/internal/backup"
	"github.com/julianstephens/myday/internal/datekey"
	"github.com/julianstephens/myday/internal/gateway"
	"github.com/julianstephens/myday/internal/journal"
	"github.com/julianstephens/myday/internal/logger"
	"github.com/julianstephens/myday/internal/models"
	"github.com/julianstephens/myday/internal/storage"
	"github.com/julianstephens/myday/internal/tui"
)

// GatewayFactory builds the AI gateway when a command needs it.
type GatewayFactory func() (gateway.Gateway, error)

type Context struct {
	Ctx         context.Context
	DataDir     string
	Backend     string
	Slot        storage.Slot
	Adapter     *storage.Adapter
	Settings    models.Settings
	Timezone    string // effective timezone: --timezone or the saved setting
	APIKey      string // explicit --api-key value, if any
	NewGateway  GatewayFactory
	Interactive bool // stdout is a terminal; enables spinners and prompts
	Out         io.Writer
	In          io.Reader
}

// NewContext wires a context over a slot with settings loaded from it.
func NewContext(dataDir, backend string, slot storage.Slot) *Context {
	adapter := storage.NewAdapter(slot)
	settings := adapter.LoadSettings()
	return &Context{
		Ctx:      context.Background(),
		DataDir:  dataDir,
		Backend:  backend,
		Slot:     slot,
		Adapter:  adapter,
		Settings: settings,
		Timezone: settings.Timezone,
		Out:      os.Stdout,
		In:       os.Stdin,
	}
}

// OpenJournal loads the entry store for this command.
func (c *Context) OpenJournal() *journal.Store {
	return journal.Open(c.Adapter)
}

// ResolveDate turns "", "today", "yesterday", "tomorrow" or a date key into a
// date key in the effective timezone.
func (c *Context) ResolveDate(value string) (string, error) {
	return datekey.Resolve(value, c.Timezone)
}

// Styles returns the styles for the saved theme.
func (c *Context) Styles() tui.Styles {
	return tui.NewStyles(models.ThemeFor(c.Settings.Theme))
}

// Gateway builds the AI gateway, or reports why it cannot.
func (c *Context) Gateway() (gateway.Gateway, error) {
	if c.NewGateway == nil {
		return nil, gateway.ErrMissingAPIKey
	}
	return c.NewGateway()
}

// RunGatewayTask runs fn behind a spinner on a terminal and directly otherwise.
func (c *Context) RunGatewayTask(title string, fn func(ctx context.Context) error) error {
	if c.Interactive {
		return tui.RunWithSpinner(c.Ctx, title, c.Styles(), os.Stderr, fn)
	}
	return fn(c.Ctx)
}

// BackupManager returns the backup manager for the data directory.
func (c *Context) BackupManager() *backup.Manager {
	return backup.NewManager(c.Slot, backup.DefaultDir(c.DataDir))
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	_, err := c.BackupManager().CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Out, args...)
}

func (c *Context) Print(args ...interface{}) {
	fmt.Fprint(c.Out, args...)
}
