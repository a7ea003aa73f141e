package entries

import (
	"github.com/julianstephens/myday/internal/cli"
	"github.com/julianstephens/myday/internal/datekey"
	"github.com/julianstephens/myday/internal/tui"
)

type ListCmd struct {
	Limit int    `short:"n" help:"Show only the most recent N entries (0 for all)." default:"0"`
	From  string `help:"First day to include (YYYY-MM-DD)."`
	To    string `help:"Last day to include (YYYY-MM-DD)."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	from, to := "", ""
	var err error
	if c.From != "" {
		if from, err = ctx.ResolveDate(c.From); err != nil {
			return err
		}
	}
	if c.To != "" {
		if to, err = ctx.ResolveDate(c.To); err != nil {
			return err
		}
	}

	store := ctx.OpenJournal()
	var keys []string
	for _, k := range store.Keys() {
		if (from != "" && datekey.Compare(k, from) < 0) || (to != "" && datekey.Compare(k, to) > 0) {
			continue
		}
		keys = append(keys, k)
	}
	if c.Limit > 0 && len(keys) > c.Limit {
		keys = keys[len(keys)-c.Limit:]
	}

	if len(keys) == 0 {
		ctx.Println("No entries found.")
		return nil
	}

	st := ctx.Styles()
	for _, k := range keys {
		ctx.Println(tui.RenderEntryRow(store.Get(k), st))
	}
	ctx.Printf("\n%d entries\n", len(keys))
	return nil
}
