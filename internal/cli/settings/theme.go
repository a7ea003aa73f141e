package settings

import (
	"github.com/julianstephens/myday/internal/cli"
)

// ThemeCmd is shorthand for the theme part of SettingsCmd.
type ThemeCmd struct {
	Name string `arg:"" optional:"" help:"Theme to switch to."`
	List bool   `short:"l" help:"Preview every theme."`
}

func (c *ThemeCmd) Run(ctx *cli.Context) error {
	if c.List || c.Name == "" {
		return (&SettingsCmd{Themes: true}).Run(ctx)
	}
	return (&SettingsCmd{Theme: &c.Name}).Run(ctx)
}
