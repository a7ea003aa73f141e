package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/julianstephens/myday/internal/constants"
	"github.com/julianstephens/myday/internal/datekey"
	apperrors "github.com/julianstephens/myday/internal/errors"
	"github.com/julianstephens/myday/internal/logger"
	"github.com/julianstephens/myday/internal/models"
)

// NewSlot builds the slot for a backend rooted at dataDir.
func NewSlot(backend, dataDir string) (Slot, error) {
	switch backend {
	case "", constants.BackendJSON:
		return NewFileSlot(dataDir), nil
	case constants.BackendSQLite:
		return NewSQLiteSlot(filepath.Join(dataDir, constants.SQLiteFileName)), nil
	case constants.BackendDiskv:
		return NewDiskvSlot(filepath.Join(dataDir, constants.DiskvDirName)), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}

// Adapter loads and saves the whole entry collection, and the settings, through
// a Slot. Load and Save never fail the caller: problems are logged and the
// session carries on with what it has in memory.
type Adapter struct {
	slot Slot
}

func NewAdapter(slot Slot) *Adapter {
	return &Adapter{slot: slot}
}

// Slot returns the underlying slot.
func (a *Adapter) Slot() Slot {
	return a.slot
}

// Load returns the persisted collection, or an empty one when the slot is
// absent, unreadable or corrupt.
func (a *Adapter) Load() models.EntryCollection {
	data, err := a.slot.Read(constants.EntriesSlotKey)
	if err != nil {
		if !errors.Is(err, ErrSlotEmpty) {
			logger.Error("Could not load entries",
				"error", &apperrors.PersistenceError{Op: "load", Key: constants.EntriesSlotKey, Err: err})
		}
		return models.EntryCollection{}
	}

	entries, _, err := decodeEntries(data)
	if err != nil {
		logger.Error("Could not load entries",
			"error", &apperrors.PersistenceError{Op: "load", Key: constants.EntriesSlotKey, Err: err})
		return models.EntryCollection{}
	}
	return entries
}

// Save writes the collection. A failure is logged and swallowed.
func (a *Adapter) Save(entries models.EntryCollection) {
	if err := a.save(entries); err != nil {
		logger.Error("Could not save entries", "error", err)
	}
}

func (a *Adapter) save(entries models.EntryCollection) error {
	if entries == nil {
		entries = models.EntryCollection{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return &apperrors.PersistenceError{Op: "save", Key: constants.EntriesSlotKey, Err: err}
	}
	if err := a.slot.Write(constants.EntriesSlotKey, data); err != nil {
		return &apperrors.PersistenceError{Op: "save", Key: constants.EntriesSlotKey, Err: err}
	}
	logger.Debug("Saved entries", "count", len(entries))
	return nil
}

// Import decodes an exported collection, such as the browser build's
// gemini-journal-entries value. Unlike Load it fails on parse errors and on
// records that cannot be repaired, so nothing is merged from a bad file.
func (a *Adapter) Import(data []byte) (models.EntryCollection, error) {
	entries, rejected, err := decodeEntries(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse entries: %w", err)
	}
	if len(rejected) > 0 {
		return nil, apperrors.NewValidationError("import",
			fmt.Sprintf("has %d invalid record(s): %s", len(rejected), strings.Join(rejected, ", ")))
	}
	return entries, nil
}

// LoadSettings returns the persisted settings with defaults applied.
func (a *Adapter) LoadSettings() models.Settings {
	settings := models.DefaultSettings()

	data, err := a.slot.Read(constants.SettingsSlotKey)
	if err != nil {
		if !errors.Is(err, ErrSlotEmpty) {
			logger.Warn("Could not load settings",
				"error", &apperrors.PersistenceError{Op: "load", Key: constants.SettingsSlotKey, Err: err})
		}
		return settings
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		logger.Warn("Could not parse settings",
			"error", &apperrors.PersistenceError{Op: "load", Key: constants.SettingsSlotKey, Err: err})
		return models.DefaultSettings()
	}
	models.ApplyDefaultSettings(&settings)
	return settings
}

// SaveSettings writes settings under their own key.
func (a *Adapter) SaveSettings(settings models.Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return &apperrors.PersistenceError{Op: "save", Key: constants.SettingsSlotKey, Err: err}
	}
	if err := a.slot.Write(constants.SettingsSlotKey, data); err != nil {
		perr := &apperrors.PersistenceError{Op: "save", Key: constants.SettingsSlotKey, Err: err}
		logger.Error("Could not save settings", "error", perr)
		return perr
	}
	return nil
}

// decodeEntries parses a collection and repairs records written by older or
// foreign builds. Records that cannot be repaired are left out and their keys
// returned in rejected.
func decodeEntries(data []byte) (entries models.EntryCollection, rejected []string, err error) {
	var raw map[string]models.JournalEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}

	entries = make(models.EntryCollection, len(raw))
	for key, entry := range raw {
		if !datekey.Valid(key) {
			logger.Warn("Skipping entry with malformed date key", "key", key)
			rejected = append(rejected, key)
			continue
		}
		entry = normalize(key, entry)
		if verr := entry.Validate(); verr != nil {
			logger.Warn("Skipping invalid entry", "key", key, "error", verr)
			rejected = append(rejected, key)
			continue
		}
		entries[key] = entry
	}
	sort.Strings(rejected)
	return entries, rejected, nil
}

func normalize(key string, entry models.JournalEntry) models.JournalEntry {
	// the map key is the entry's identity
	entry.Date = key
	if !entry.Mood.Valid() {
		entry.Mood = models.DefaultMood
	}
	entry.Todos = normalizeTodos(key, entry.Todos)
	return entry
}

// normalizeTodos drops blank to-dos and gives missing or repeated ids a fresh
// one, so every id within the entry is unique.
func normalizeTodos(key string, todos []models.TodoItem) []models.TodoItem {
	out := make([]models.TodoItem, 0, len(todos))
	seen := make(map[string]bool, len(todos))
	for _, todo := range todos {
		if models.ValidateTodoText(todo.Text) != nil {
			logger.Warn("Dropping blank to-do", "key", key, "id", todo.ID)
			continue
		}
		if todo.ID == "" || seen[todo.ID] {
			fresh := models.NewTodoItem(todo.Text).ID
			logger.Warn("Reassigning to-do id", "key", key, "old", todo.ID, "new", fresh)
			todo.ID = fresh
		}
		seen[todo.ID] = true
		out = append(out, todo)
	}
	return out
}
