package settings

import (
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/myday/internal/cli"
	"github.com/julianstephens/myday/internal/datekey"
	"github.com/julianstephens/myday/internal/models"
	"github.com/julianstephens/myday/internal/tui"
)

type SettingsCmd struct {
	List   bool `help:"List current settings."`
	Themes bool `help:"Preview every theme."`

	Theme    *string `help:"Color theme (blush-pink, moon-night, indigo, pastel-dream, floral-bliss, cosmic-star)."`
	Timezone *string `name:"default-timezone" help:"Saved IANA timezone that decides which day 'today' is (e.g. America/New_York, or Local)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings := ctx.Adapter.LoadSettings()

	if c.List {
		theme := models.ThemeFor(settings.Theme)
		ctx.Println("Current Settings:")
		ctx.Printf("  Theme:     %s (%s)\n", settings.Theme, theme.Name)
		ctx.Printf("  Timezone:  %s\n", settings.Timezone)
		if ctx.Timezone != settings.Timezone {
			ctx.Printf("             overridden to %s for this run\n", ctx.Timezone)
		}
		return nil
	}

	if c.Themes {
		for _, name := range models.ThemeNames {
			theme := models.ThemeFor(name)
			st := tui.NewStyles(theme)
			marker := "  "
			if name == settings.Theme {
				marker = "* "
			}
			ctx.Printf("%s%-14s %s %s\n", marker, name, st.Title.Render(theme.Name), st.Secondary.Render("✦"))
		}
		return nil
	}

	updated := false
	if c.Theme != nil {
		name := strings.ToLower(strings.TrimSpace(*c.Theme))
		if !slices.Contains(models.ThemeNames, name) {
			return fmt.Errorf("unknown theme %q (expected one of %s)", *c.Theme, strings.Join(models.ThemeNames, ", "))
		}
		settings.Theme = name
		updated = true
	}
	if c.Timezone != nil {
		tz := strings.TrimSpace(*c.Timezone)
		if !datekey.ValidateTimezone(tz) {
			return fmt.Errorf("invalid timezone %q", *c.Timezone)
		}
		settings.Timezone = tz
		updated = true
	}

	if updated {
		if err := ctx.Adapter.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		ctx.Settings = settings
		ctx.Println("Settings updated successfully.")
	} else {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
