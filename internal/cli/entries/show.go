package entries

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/julianstephens/myday/internal/cli"
	"github.com/julianstephens/myday/internal/tui"
)

type ShowCmd struct {
	Date string `short:"d" help:"Day to show (YYYY-MM-DD, today, yesterday)." default:"today"`
	JSON bool   `help:"Print the raw entry as JSON."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	entry := ctx.OpenJournal().Get(date)

	if c.JSON {
		jsonBytes, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entry: %w", err)
		}
		ctx.Println(string(jsonBytes))
		return nil
	}

	ctx.Println(tui.RenderEntry(entry, ctx.Styles()))
	return nil
}
