package todos

import (
	"fmt"

	"github.com/julianstephens/myday/internal/cli"
)

type TodoToggleCmd struct {
	Ref  string `arg:"" help:"To-do number, ID or ID prefix."`
	Date string `short:"d" help:"Day the to-do belongs to." default:"today"`
}

func (c *TodoToggleCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	store := ctx.OpenJournal()
	todo, err := store.FindTodo(date, c.Ref)
	if err != nil {
		return fmt.Errorf("failed to find to-do %s on %s: %w", c.Ref, date, err)
	}

	toggled, err := store.ToggleTodo(date, todo.ID)
	if err != nil {
		return fmt.Errorf("failed to toggle to-do: %w", err)
	}
	if err := store.Commit(); err != nil {
		return err
	}

	state := "open"
	if toggled.Completed {
		state = "done"
	}
	ctx.Printf("Marked %s: %s\n", state, toggled.Text)
	return nil
}
