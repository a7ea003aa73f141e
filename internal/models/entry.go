package models

import (
	"slices"

	"github.com/google/uuid"
)

// TodoItem is one line of a day's to-do list.
type TodoItem struct {
	ID        string `json:"id" validate:"required"`
	Text      string `json:"text" validate:"nonblank"`
	Completed bool   `json:"completed"`
}

// NewTodoItem creates an open to-do with a fresh time-ordered ID.
func NewTodoItem(text string) TodoItem {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return TodoItem{
		ID:   id.String(),
		Text: text,
	}
}

// Insights holds the AI-generated fields of an entry. A nil field was never
// produced; a pointer to an empty list means the analysis returned nothing.
type Insights struct {
	Summary            *string   `json:"summary,omitempty"`
	PositiveAspects    *[]string `json:"positive_aspects,omitempty"`
	AreasForReflection *[]string `json:"areas_for_reflection,omitempty"`
	KeyTakeaways       *[]string `json:"key_takeaways,omitempty"`
}

// NewInsights builds a complete insight group.
func NewInsights(summary string, positive, reflection, takeaways []string) Insights {
	return Insights{
		Summary:            &summary,
		PositiveAspects:    listPtr(positive),
		AreasForReflection: listPtr(reflection),
		KeyTakeaways:       listPtr(takeaways),
	}
}

// Analyzed reports whether the entry has been through a successful analysis.
func (i Insights) Analyzed() bool {
	return i.Summary != nil
}

// Complete reports whether all four fields are present.
func (i Insights) Complete() bool {
	return i.Summary != nil && i.PositiveAspects != nil && i.AreasForReflection != nil && i.KeyTakeaways != nil
}

// Clone returns a deep copy.
func (i Insights) Clone() Insights {
	out := Insights{
		PositiveAspects:    cloneList(i.PositiveAspects),
		AreasForReflection: cloneList(i.AreasForReflection),
		KeyTakeaways:       cloneList(i.KeyTakeaways),
	}
	if i.Summary != nil {
		s := *i.Summary
		out.Summary = &s
	}
	return out
}

// JournalEntry is one calendar day's record, identified by Date.
type JournalEntry struct {
	Date  string     `json:"date" validate:"datekey"`
	Text  string     `json:"text"`
	Mood  Mood       `json:"mood" validate:"mood"`
	Todos []TodoItem `json:"todos" validate:"dive"`
	Image *string    `json:"image,omitempty"` // data URI; nil means no image
	Insights
}

// DefaultEntry is the record read for a day that has never been written.
func DefaultEntry(date string) JournalEntry {
	return JournalEntry{
		Date:  date,
		Text:  "",
		Mood:  DefaultMood,
		Todos: []TodoItem{},
	}
}

// HasImage reports whether an image is attached.
func (e JournalEntry) HasImage() bool {
	return e.Image != nil && *e.Image != ""
}

// CompletedTodos counts finished to-dos.
func (e JournalEntry) CompletedTodos() int {
	n := 0
	for _, t := range e.Todos {
		if t.Completed {
			n++
		}
	}
	return n
}

// Clone returns a deep copy so callers cannot alias store state.
func (e JournalEntry) Clone() JournalEntry {
	out := e
	out.Todos = slices.Clone(e.Todos)
	if out.Todos == nil {
		out.Todos = []TodoItem{}
	}
	if e.Image != nil {
		img := *e.Image
		out.Image = &img
	}
	out.Insights = e.Insights.Clone()
	return out
}

// EntryCollection maps date keys to entries; at most one entry per day.
type EntryCollection map[string]JournalEntry

// Clone returns a deep copy of the collection.
func (c EntryCollection) Clone() EntryCollection {
	out := make(EntryCollection, len(c))
	for k, e := range c {
		out[k] = e.Clone()
	}
	return out
}

func listPtr(items []string) *[]string {
	list := slices.Clone(items)
	if list == nil {
		list = []string{}
	}
	return &list
}

func cloneList(p *[]string) *[]string {
	if p == nil {
		return nil
	}
	return listPtr(*p)
}
