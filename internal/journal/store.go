// Package journal holds the in-memory entry collection for a session and the
// partial-update operations that editors use to change it.
package journal

import (
	"errors"
	"slices"

	"github.com/julianstephens/myday/internal/datekey"
	"github.com/julianstephens/myday/internal/logger"
	"github.com/julianstephens/myday/internal/models"
)

// ErrTodoNotFound is returned when a to-do ID does not exist on the entry.
var ErrTodoNotFound = errors.New("todo not found")

// Persister is the slice of the storage adapter the store needs.
type Persister interface {
	Load() models.EntryCollection
	Save(models.EntryCollection)
}

// Store owns the entry collection for the lifetime of a command. Every update
// merges into the record for one date key and leaves the fields it does not
// own untouched. It is not safe for concurrent use.
type Store struct {
	entries   models.EntryCollection
	persister Persister
}

// Open loads the persisted collection through p.
func Open(p Persister) *Store {
	entries := p.Load()
	if entries == nil {
		entries = models.EntryCollection{}
	}
	return &Store{entries: entries, persister: p}
}

// New builds a store over an existing collection with no persistence.
func New(entries models.EntryCollection) *Store {
	if entries == nil {
		entries = models.EntryCollection{}
	}
	return &Store{entries: entries.Clone()}
}

// Get returns the entry for key, or the default entry when the day has never
// been written. It never inserts.
func (s *Store) Get(key string) models.JournalEntry {
	if e, ok := s.entries[key]; ok {
		return e.Clone()
	}
	return models.DefaultEntry(key)
}

// Has reports whether key has a stored record.
func (s *Store) Has(key string) bool {
	_, ok := s.entries[key]
	return ok
}

// UpdateContent sets text and mood, and applies the image update. To-dos and
// insights are carried over from the existing record.
func (s *Store) UpdateContent(key, text string, mood models.Mood, image ImageUpdate) models.EntryCollection {
	e := s.Get(key)
	e.Text = text
	e.Mood = mood
	e.Image = image.apply(e.Image)
	s.entries[key] = e
	logger.Debug("Updated entry content", "date", key, "mood", mood)
	return s.Entries()
}

// UpdateTodos replaces the entry's to-do list wholesale.
func (s *Store) UpdateTodos(key string, todos []models.TodoItem) models.EntryCollection {
	e := s.Get(key)
	e.Todos = slices.Clone(todos)
	if e.Todos == nil {
		e.Todos = []models.TodoItem{}
	}
	s.entries[key] = e
	logger.Debug("Updated todos", "date", key, "count", len(e.Todos))
	return s.Entries()
}

// MergeInsights sets each insight field present in insights. Absent fields
// keep their previous value.
func (s *Store) MergeInsights(key string, insights models.Insights) models.EntryCollection {
	e := s.Get(key)
	in := insights.Clone()
	if in.Summary != nil {
		e.Summary = in.Summary
	}
	if in.PositiveAspects != nil {
		e.PositiveAspects = in.PositiveAspects
	}
	if in.AreasForReflection != nil {
		e.AreasForReflection = in.AreasForReflection
	}
	if in.KeyTakeaways != nil {
		e.KeyTakeaways = in.KeyTakeaways
	}
	s.entries[key] = e
	logger.Debug("Merged insights", "date", key)
	return s.Entries()
}

// Entries returns a deep copy of the whole collection.
func (s *Store) Entries() models.EntryCollection {
	return s.entries.Clone()
}

// Keys returns the stored date keys in ascending date order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, datekey.Compare)
	return keys
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Commit writes the collection through the persister. Storage failures are
// logged by the adapter and do not surface here.
func (s *Store) Commit() error {
	if s.persister == nil {
		return errors.New("journal store has no persister")
	}
	s.persister.Save(s.entries.Clone())
	return nil
}
