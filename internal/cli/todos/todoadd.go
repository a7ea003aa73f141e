package todos

import (
	"fmt"

	"github.com/julianstephens/myday/internal/cli"
)

type TodoAddCmd struct {
	Text string `arg:"" help:"To-do text."`
	Date string `short:"d" help:"Day the to-do belongs to." default:"today"`
}

func (c *TodoAddCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	store := ctx.OpenJournal()
	item, err := store.AddTodo(date, c.Text)
	if err != nil {
		return fmt.Errorf("failed to add to-do: %w", err)
	}
	if err := store.Commit(); err != nil {
		return err
	}

	ctx.Printf("Added to-do #%d for %s: %s (ID: %s)\n", len(store.Get(date).Todos), date, item.Text, item.ID)
	return nil
}
