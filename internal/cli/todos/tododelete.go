package todos

import (
	"fmt"

	"github.com/julianstephens/myday/internal/cli"
)

type TodoDeleteCmd struct {
	Ref  string `arg:"" help:"To-do number, ID or ID prefix."`
	Date string `short:"d" help:"Day the to-do belongs to." default:"today"`
}

func (c *TodoDeleteCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	store := ctx.OpenJournal()
	todo, err := store.FindTodo(date, c.Ref)
	if err != nil {
		return fmt.Errorf("failed to find to-do %s on %s: %w", c.Ref, date, err)
	}

	if err := store.DeleteTodo(date, todo.ID); err != nil {
		return fmt.Errorf("failed to delete to-do: %w", err)
	}
	if err := store.Commit(); err != nil {
		return err
	}

	ctx.Printf("Deleted to-do: %s (ID: %s)\n", todo.Text, todo.ID)
	return nil
}
