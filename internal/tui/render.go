package tui

import (
	"fmt"
	"strings"

	"github.com/julianstephens/myday/internal/datekey"
	"github.com/julianstephens/myday/internal/models"
)

// RenderEntry renders a full day: mood, text, image, to-dos and, once the
// entry has been analyzed, its insights.
func RenderEntry(e models.JournalEntry, st Styles) string {
	var b strings.Builder

	b.WriteString(st.Title.Render(fmt.Sprintf("%s  %s", e.Mood.Emoji(), formatDate(e.Date))))
	b.WriteString("  " + st.Muted.Render(string(e.Mood)))
	b.WriteString("\n\n")

	if strings.TrimSpace(e.Text) == "" {
		b.WriteString(st.Muted.Render("Nothing written yet."))
	} else {
		b.WriteString(st.Text.Render(e.Text))
	}
	b.WriteString("\n")

	if e.HasImage() {
		b.WriteString("\n" + st.Accent.Render("🖼  image attached") + " " + st.Muted.Render(imageSummary(*e.Image)) + "\n")
	}

	b.WriteString(RenderTodos(e.Todos, st))

	if e.Analyzed() {
		b.WriteString(RenderInsights(e.Insights, st))
	}
	return b.String()
}

// RenderTodos renders a to-do list with numbered lines.
func RenderTodos(todos []models.TodoItem, st Styles) string {
	var b strings.Builder
	done := 0
	for _, t := range todos {
		if t.Completed {
			done++
		}
	}

	b.WriteString(st.Header.Render(fmt.Sprintf("To-dos (%d/%d)", done, len(todos))))
	b.WriteString("\n")
	if len(todos) == 0 {
		b.WriteString(st.Muted.Render("  No to-dos for this day.") + "\n")
		return b.String()
	}
	for i, t := range todos {
		box := "[ ]"
		text := st.Text.Render(t.Text)
		if t.Completed {
			box = "[x]"
			text = st.Muted.Render(t.Text)
		}
		fmt.Fprintf(&b, "  %2d. %s %s\n", i+1, st.Accent.Render(box), text)
	}
	return b.String()
}

// RenderInsights renders the four insight sections.
func RenderInsights(in models.Insights, st Styles) string {
	var b strings.Builder
	if in.Summary != nil {
		b.WriteString(st.Header.Render("Summary") + "\n")
		b.WriteString("  " + st.Text.Render(*in.Summary) + "\n")
	}
	section := func(title string, items *[]string) {
		if items == nil {
			return
		}
		b.WriteString(st.Header.Render(title) + "\n")
		if len(*items) == 0 {
			b.WriteString(st.Muted.Render("  (none)") + "\n")
			return
		}
		for _, item := range *items {
			b.WriteString("  " + st.Secondary.Render("•") + " " + st.Text.Render(item) + "\n")
		}
	}
	section("Positive aspects", in.PositiveAspects)
	section("Areas for reflection", in.AreasForReflection)
	section("Key takeaways", in.KeyTakeaways)
	return b.String()
}

// RenderTips renders wellness suggestions.
func RenderTips(tips []string, st Styles) string {
	var b strings.Builder
	b.WriteString(st.Header.Render("Wellness tips") + "\n")
	if len(tips) == 0 {
		b.WriteString(st.Muted.Render("  No suggestions this time.") + "\n")
		return b.String()
	}
	for _, tip := range tips {
		b.WriteString("  " + st.Secondary.Render("✦") + " " + st.Text.Render(tip) + "\n")
	}
	return b.String()
}

// RenderEntryRow renders a one-line summary used by listings.
func RenderEntryRow(e models.JournalEntry, st Styles) string {
	analyzed := " "
	if e.Analyzed() {
		analyzed = st.Secondary.Render("✦")
	}
	return fmt.Sprintf("%s %s %s %s %s",
		st.Accent.Render(e.Date),
		e.Mood.Emoji(),
		analyzed,
		st.Muted.Render(fmt.Sprintf("%d/%d", e.CompletedTodos(), len(e.Todos))),
		st.Text.Render(Excerpt(e.Text, 48)),
	)
}

// Excerpt returns the first line of text, cut to max runes.
func Excerpt(text string, max int) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	runes := []rune(line)
	if len(runes) <= max {
		return line
	}
	return string(runes[:max-1]) + "…"
}

func formatDate(key string) string {
	t, err := datekey.FromDateKey(key, nil)
	if err != nil {
		return key
	}
	return t.Format("Monday, January 2, 2006")
}

func imageSummary(uri string) string {
	mime, _, _ := strings.Cut(strings.TrimPrefix(uri, "data:"), ";")
	kb := (len(uri)*3/4 + 1023) / 1024
	return fmt.Sprintf("(%s, ~%d KB)", mime, kb)
}
