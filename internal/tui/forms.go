package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/myday/internal/constants"
	"github.com/julianstephens/myday/internal/models"
)

// ComposeFormModel backs the entry compose form.
type ComposeFormModel struct {
	Text     string
	Mood     models.Mood
	Stickers []string
}

// Content is the entry text with any chosen stickers appended.
func (fm *ComposeFormModel) Content() string {
	return AddStickers(fm.Text, fm.Stickers...)
}

// AddStickers appends stickers to text, separated by a space.
func AddStickers(text string, stickers ...string) string {
	if len(stickers) == 0 {
		return text
	}
	added := strings.Join(stickers, "")
	if strings.TrimSpace(text) == "" {
		return added
	}
	return strings.TrimRight(text, " ") + " " + added
}

// IsSticker reports whether s is one of the offered stickers.
func IsSticker(s string) bool {
	return slices.Contains(constants.Stickers, s)
}

// NewComposeForm creates the form for writing an entry's text and mood.
func NewComposeForm(fm *ComposeFormModel, date string) *huh.Form {
	options := make([]huh.Option[models.Mood], 0, len(models.Moods))
	for _, m := range models.Moods {
		options = append(options, huh.NewOption(m.Emoji()+" "+string(m), m))
	}
	stickers := huh.NewOptions(constants.Stickers...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Journal for "+date).
				Description("What's on your mind today?").
				CharLimit(20000).
				Lines(10).
				Value(&fm.Text),
			huh.NewSelect[models.Mood]().
				Title("Mood").
				Options(options...).
				Value(&fm.Mood),
			huh.NewMultiSelect[string]().
				Title("Stickers").
				Description("Added to the end of your entry.").
				Options(stickers...).
				Value(&fm.Stickers),
		),
	)
}

// NewTodoForm creates the single-field form for adding a to-do.
func NewTodoForm(text *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New to-do").
				Placeholder("Add a new task...").
				Value(text).
				Validate(models.ValidateTodoText),
		),
	)
}

// NewConfirmForm creates a yes/no confirmation.
func NewConfirmForm(title string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(confirmed),
		),
	)
}
