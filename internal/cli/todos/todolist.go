package todos

import (
	"github.com/julianstephens/myday/internal/cli"
	"github.com/julianstephens/myday/internal/tui"
)

type TodoListCmd struct {
	Date string `short:"d" help:"Day to list." default:"today"`
	IDs  bool   `name:"ids" help:"Show to-do IDs."`
}

func (c *TodoListCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	todos := ctx.OpenJournal().Get(date).Todos
	st := ctx.Styles()
	ctx.Print(tui.RenderTodos(todos, st))
	if c.IDs {
		for i, t := range todos {
			ctx.Printf("  %2d. %s\n", i+1, st.Muted.Render(t.ID))
		}
	}
	return nil
}
