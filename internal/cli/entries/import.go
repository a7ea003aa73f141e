package entries

import (
	"fmt"
	"os"

	"github.com/julianstephens/myday/internal/cli"
	"github.com/julianstephens/myday/internal/journal"
)

type ImportCmd struct {
	File      string `arg:"" help:"JSON file holding an exported entry collection." type:"existingfile"`
	Overwrite bool   `help:"Replace days that already have an entry."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}
	imported, err := ctx.Adapter.Import(data)
	if err != nil {
		return err
	}

	store := ctx.OpenJournal()
	added, replaced, skipped := 0, 0, 0
	for date, e := range imported {
		exists := store.Has(date)
		if exists && !c.Overwrite {
			skipped++
			continue
		}

		image := journal.RemoveImage()
		if e.Image != nil {
			image = journal.SetImage(*e.Image)
		}
		store.UpdateContent(date, e.Text, e.Mood, image)
		store.UpdateTodos(date, e.Todos)
		store.MergeInsights(date, e.Insights)

		if exists {
			replaced++
		} else {
			added++
		}
	}

	if added+replaced > 0 {
		// keep a copy of what was there before the import
		ctx.PerformAutomaticBackup()
		if err := store.Commit(); err != nil {
			return err
		}
	}

	ctx.Printf("✓ Imported %d new, %d replaced, %d skipped\n", added, replaced, skipped)
	if skipped > 0 {
		ctx.Println("  Use --overwrite to replace existing days.")
	}
	return nil
}
