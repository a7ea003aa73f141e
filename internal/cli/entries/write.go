package entries

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/julianstephens/myday/internal/cli"
	"github.com/julianstephens/myday/internal/constants"
	apperrors "github.com/julianstephens/myday/internal/errors"
	"github.com/julianstephens/myday/internal/journal"
	"github.com/julianstephens/myday/internal/models"
	"github.com/julianstephens/myday/internal/tui"
)

// MaxImageBytes caps attached images.
const MaxImageBytes = 5 << 20

type WriteCmd struct {
	Date        string   `short:"d" help:"Day to write (YYYY-MM-DD, today, yesterday)." default:"today"`
	Text        *string  `short:"t" help:"Entry text. Replaces the existing text." xor:"source"`
	Stdin       bool     `help:"Read the entry text from standard input." xor:"source"`
	Append      bool     `short:"a" help:"Append to the existing text instead of replacing it."`
	Mood        string   `short:"m" help:"Mood: happy, excited, neutral, sad, anxious or angry."`
	Sticker     []string `short:"s" help:"Sticker to add to the end of the text (🌸 💖 ✨ 🎀 🌙 ⭐ 🦋 ☁️). Repeatable."`
	Image       string   `help:"Attach an image file." type:"existingfile" xor:"image"`
	RemoveImage bool     `help:"Remove the attached image." xor:"image"`
	Interactive bool     `short:"i" help:"Open the compose form." xor:"source"`
}

func (c *WriteCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	store := ctx.OpenJournal()
	current := store.Get(date)
	text := current.Text
	mood := current.Mood
	changed := false

	switch {
	case c.Interactive:
		fm := &tui.ComposeFormModel{Text: current.Text, Mood: current.Mood}
		if err := tui.NewComposeForm(fm, date).Run(); err != nil {
			return fmt.Errorf("compose form: %w", err)
		}
		text, mood, changed = fm.Content(), fm.Mood, true
	case c.Stdin:
		data, err := io.ReadAll(ctx.In)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text, changed = c.merge(current.Text, strings.TrimRight(string(data), "\n")), true
	case c.Text != nil:
		text, changed = c.merge(current.Text, *c.Text), true
	}

	if len(c.Sticker) > 0 {
		for _, s := range c.Sticker {
			if !tui.IsSticker(s) {
				return apperrors.NewValidationError("sticker", fmt.Sprintf("%q is not one of %s", s, strings.Join(constants.Stickers, " ")))
			}
		}
		text, changed = tui.AddStickers(text, c.Sticker...), true
	}

	if c.Mood != "" {
		m, err := models.ParseMood(c.Mood)
		if err != nil {
			return err
		}
		mood, changed = m, true
	}

	image := journal.KeepImage()
	switch {
	case c.Image != "":
		uri, err := EncodeImage(c.Image)
		if err != nil {
			return err
		}
		image, changed = journal.SetImage(uri), true
	case c.RemoveImage:
		image, changed = journal.RemoveImage(), true
	}

	if !changed {
		return errors.New("nothing to write: pass --text, --stdin, --mood, --sticker, --image, --remove-image or --interactive")
	}

	store.UpdateContent(date, text, mood, image)
	if err := store.Commit(); err != nil {
		return err
	}

	ctx.Printf("✓ Saved entry for %s %s\n", date, mood.Emoji())
	return nil
}

func (c *WriteCmd) merge(existing, text string) string {
	if !c.Append || strings.TrimSpace(existing) == "" {
		return text
	}
	return existing + "\n\n" + text
}

// EncodeImage reads an image file into a data URI.
func EncodeImage(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if info.Size() > MaxImageBytes {
		return "", fmt.Errorf("image is too large (%d KB, limit %d KB)", info.Size()/1024, MaxImageBytes/1024)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%s is not an image (detected %s)", path, mtype.String())
	}

	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
