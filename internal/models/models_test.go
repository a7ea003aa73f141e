package models

import (
	"testing"

	"github.com/goccy/go-json"

	apperrors "github.com/julianstephens/myday/internal/errors"
)

func TestParseMood(t *testing.T) {
	for _, m := range Moods {
		got, err := ParseMood(string(m))
		if err != nil || got != m {
			t.Errorf("ParseMood(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseMood("ecstatic"); err == nil {
		t.Error("ParseMood(\"ecstatic\") expected error")
	}
	if Mood("ecstatic").Emoji() != MoodNeutral.Emoji() {
		t.Error("unknown mood should fall back to the neutral emoji")
	}
}

func TestDefaultEntry(t *testing.T) {
	e := DefaultEntry("2024-03-01")
	if e.Date != "2024-03-01" || e.Text != "" || e.Mood != MoodNeutral {
		t.Errorf("DefaultEntry() = %+v", e)
	}
	if e.Todos == nil || len(e.Todos) != 0 {
		t.Errorf("DefaultEntry().Todos = %v, want empty non-nil slice", e.Todos)
	}
	if e.Image != nil || e.Analyzed() {
		t.Error("DefaultEntry() should have no image and no insights")
	}
}

func TestNewTodoItem(t *testing.T) {
	a := NewTodoItem("Walk")
	b := NewTodoItem("Walk")
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("NewTodoItem() IDs not unique: %q, %q", a.ID, b.ID)
	}
	if a.Completed {
		t.Error("NewTodoItem() should start open")
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestEntryJSONOmitsUnsetInsights(t *testing.T) {
	e := DefaultEntry("2024-03-01")
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	for _, field := range []string{"summary", "positive_aspects", "areas_for_reflection", "key_takeaways", "image"} {
		if _, ok := raw[field]; ok {
			t.Errorf("field %q present for never-analyzed entry: %s", field, data)
		}
	}
	if todos, ok := raw["todos"].([]any); !ok || len(todos) != 0 {
		t.Errorf("todos = %v, want []", raw["todos"])
	}
}

func TestEntryJSONKeepsAnalyzedEmpty(t *testing.T) {
	e := DefaultEntry("2024-03-01")
	e.Insights = NewInsights("short day", nil, []string{}, nil)

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var back JournalEntry
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !back.Complete() {
		t.Fatalf("analyzed-empty fields lost in round trip: %s", data)
	}
	if len(*back.PositiveAspects) != 0 || *back.Summary != "short day" {
		t.Errorf("round trip = %+v", back.Insights)
	}
}

func TestCloneIsDeep(t *testing.T) {
	img := "data:image/png;base64,AAAA"
	e := DefaultEntry("2024-03-01")
	e.Image = &img
	e.Todos = append(e.Todos, NewTodoItem("Walk"))
	e.Insights = NewInsights("s", []string{"a"}, []string{"b"}, []string{"c"})

	c := e.Clone()
	c.Todos[0].Completed = true
	*c.Image = "changed"
	(*c.PositiveAspects)[0] = "changed"
	*c.Summary = "changed"

	if e.Todos[0].Completed || *e.Image != img || (*e.PositiveAspects)[0] != "a" || *e.Summary != "s" {
		t.Error("Clone() shares state with the original")
	}
}

func TestEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(e *JournalEntry)
		wantErr bool
	}{
		{name: "default entry is valid", mutate: func(e *JournalEntry) {}},
		{name: "bad date key", mutate: func(e *JournalEntry) { e.Date = "2024-3-1" }, wantErr: true},
		{name: "unknown mood", mutate: func(e *JournalEntry) { e.Mood = "bored" }, wantErr: true},
		{name: "blank todo", mutate: func(e *JournalEntry) {
			e.Todos = []TodoItem{{ID: "1", Text: "   "}}
		}, wantErr: true},
		{name: "todo without id", mutate: func(e *JournalEntry) {
			e.Todos = []TodoItem{{Text: "Walk"}}
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := DefaultEntry("2024-03-01")
			tt.mutate(&e)
			err := e.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !apperrors.IsValidation(err) {
				t.Errorf("Validate() error %T is not a ValidationError", err)
			}
		})
	}
}

func TestValidateTodoText(t *testing.T) {
	if err := ValidateTodoText("Walk"); err != nil {
		t.Errorf("ValidateTodoText(\"Walk\") = %v", err)
	}
	for _, text := range []string{"", "  ", "\t\n"} {
		if err := ValidateTodoText(text); !apperrors.IsValidation(err) {
			t.Errorf("ValidateTodoText(%q) = %v, want ValidationError", text, err)
		}
	}
}

func TestApplyDefaultSettings(t *testing.T) {
	s := Settings{Theme: "neon"}
	ApplyDefaultSettings(&s)
	if s.Theme != "moon-night" || s.Timezone != "Local" {
		t.Errorf("ApplyDefaultSettings() = %+v", s)
	}

	s = Settings{Theme: "indigo", Timezone: "Europe/London"}
	ApplyDefaultSettings(&s)
	if s.Theme != "indigo" || s.Timezone != "Europe/London" {
		t.Errorf("ApplyDefaultSettings() overwrote valid settings: %+v", s)
	}
}

func TestThemes(t *testing.T) {
	if len(ThemeNames) != len(Themes) {
		t.Fatalf("ThemeNames has %d entries, Themes has %d", len(ThemeNames), len(Themes))
	}
	for _, name := range ThemeNames {
		th, ok := Themes[name]
		if !ok {
			t.Errorf("theme %q missing", name)
			continue
		}
		if th.Colors.Primary == "" || th.Colors.Bg == "" || th.Colors.Border == "" {
			t.Errorf("theme %q has empty color roles", name)
		}
	}
	if ThemeFor("nope").Name != "Moon Night" {
		t.Error("ThemeFor() should fall back to moon-night")
	}
}
