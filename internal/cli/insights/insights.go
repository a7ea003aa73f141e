package insights

import (
	"context"
	"fmt"

	"github.com/julianstephens/myday/internal/cli"
	"github.com/julianstephens/myday/internal/models"
	"github.com/julianstephens/myday/internal/tui"
)

type InsightsCmd struct {
	Date string `short:"d" help:"Day to analyze." default:"today"`
	Show bool   `help:"Print the stored insights without calling the model."`
}

func (c *InsightsCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	store := ctx.OpenJournal()
	st := ctx.Styles()

	if c.Show {
		entry := store.Get(date)
		if !entry.Analyzed() {
			ctx.Printf("No insights for %s yet. Run `myday insights --date %s` to generate them.\n", date, date)
			return nil
		}
		ctx.Print(tui.RenderInsights(entry.Insights, st))
		return nil
	}

	if err := models.ValidateEntryText(store.Get(date).Text); err != nil {
		return fmt.Errorf("cannot analyze %s: %w", date, err)
	}

	gw, err := ctx.Gateway()
	if err != nil {
		return err
	}

	var entry models.JournalEntry
	err = ctx.RunGatewayTask("Analyzing your entry...", func(callCtx context.Context) error {
		var err error
		entry, err = store.Analyze(callCtx, date, gw)
		return err
	})
	if err != nil {
		return err
	}

	if err := store.Commit(); err != nil {
		return err
	}

	ctx.Print(tui.RenderInsights(entry.Insights, st))
	return nil
}
