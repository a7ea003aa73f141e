package system

import (
	"github.com/julianstephens/myday/internal/cli"
	"github.com/julianstephens/myday/internal/models"
	"github.com/julianstephens/myday/internal/tui"
)

type TuiCmd struct {
	Date string `short:"d" help:"Day to open." default:"today"`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	store := ctx.OpenJournal()
	if store.Len() > 0 {
		ctx.PerformAutomaticBackup()
	}

	var gw tui.GatewayFactory
	if ctx.NewGateway != nil {
		gw = tui.GatewayFactory(ctx.NewGateway)
	}

	return tui.Run(tui.Options{
		Store:    store,
		Date:     date,
		Timezone: ctx.Timezone,
		Theme:    models.ThemeFor(ctx.Settings.Theme),
		Gateway:  gw,
		Context:  ctx.Ctx,
	})
}
