package insights

import (
	"context"
	"fmt"

	"github.com/julianstephens/myday/internal/cli"
	"github.com/julianstephens/myday/internal/models"
	"github.com/julianstephens/myday/internal/tui"
)

// SuggestCmd prints wellness tips. Tips are shown once and never stored.
type SuggestCmd struct {
	Date string `short:"d" help:"Day whose entry the tips are based on." default:"today"`
}

func (c *SuggestCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	store := ctx.OpenJournal()
	if err := models.ValidateEntryText(store.Get(date).Text); err != nil {
		return fmt.Errorf("cannot suggest tips for %s: %w", date, err)
	}

	gw, err := ctx.Gateway()
	if err != nil {
		return err
	}

	var tips []string
	err = ctx.RunGatewayTask("Finding some tips...", func(callCtx context.Context) error {
		var err error
		tips, err = store.Suggest(callCtx, date, gw)
		return err
	})
	if err != nil {
		return err
	}

	ctx.Print(tui.RenderTips(tips, ctx.Styles()))
	return nil
}
