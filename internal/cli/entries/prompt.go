package entries

import (
	"math/rand"

	"github.com/julianstephens/myday/internal/cli"
	"github.com/julianstephens/myday/internal/constants"
)

type PromptCmd struct{}

func (c *PromptCmd) Run(ctx *cli.Context) error {
	st := ctx.Styles()
	prompt := constants.WritingPrompts[rand.Intn(len(constants.WritingPrompts))]
	quote := constants.Quotes[rand.Intn(len(constants.Quotes))]

	ctx.Println(st.Header.Render("Writing prompt"))
	ctx.Println("  " + st.Text.Render(prompt))
	ctx.Println(st.Header.Render("Quote of the day"))
	ctx.Println("  " + st.Muted.Render("\""+quote.Text+"\""))
	ctx.Println("  " + st.Secondary.Render("- "+quote.Author))
	return nil
}
