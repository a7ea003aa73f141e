package journal

import (
	"slices"

	"github.com/julianstephens/myday/internal/models"
)

// AddTodo appends an open to-do to the entry for key.
func (s *Store) AddTodo(key, text string) (models.TodoItem, error) {
	if err := models.ValidateTodoText(text); err != nil {
		return models.TodoItem{}, err
	}
	item := models.NewTodoItem(text)
	if err := item.Validate(); err != nil {
		return models.TodoItem{}, err
	}

	todos := s.Get(key).Todos
	s.UpdateTodos(key, append(todos, item))
	return item, nil
}

// ToggleTodo flips the completed flag of one to-do.
func (s *Store) ToggleTodo(key, id string) (models.TodoItem, error) {
	todos := s.Get(key).Todos
	i := slices.IndexFunc(todos, func(t models.TodoItem) bool { return t.ID == id })
	if i < 0 {
		return models.TodoItem{}, ErrTodoNotFound
	}
	todos[i].Completed = !todos[i].Completed
	s.UpdateTodos(key, todos)
	return todos[i], nil
}

// DeleteTodo removes one to-do, keeping the order of the rest.
func (s *Store) DeleteTodo(key, id string) error {
	todos := s.Get(key).Todos
	i := slices.IndexFunc(todos, func(t models.TodoItem) bool { return t.ID == id })
	if i < 0 {
		return ErrTodoNotFound
	}
	s.UpdateTodos(key, slices.Delete(todos, i, i+1))
	return nil
}

// FindTodo resolves a to-do by full ID, unique ID prefix, or 1-based position
// in the list as printed by the CLI.
func (s *Store) FindTodo(key, ref string) (models.TodoItem, error) {
	todos := s.Get(key).Todos
	if n, ok := position(ref); ok {
		if n >= 1 && n <= len(todos) {
			return todos[n-1], nil
		}
		return models.TodoItem{}, ErrTodoNotFound
	}

	var match *models.TodoItem
	for i := range todos {
		if todos[i].ID == ref {
			return todos[i], nil
		}
		if len(ref) >= 4 && len(todos[i].ID) > len(ref) && todos[i].ID[:len(ref)] == ref {
			if match != nil {
				return models.TodoItem{}, ErrTodoNotFound
			}
			match = &todos[i]
		}
	}
	if match == nil {
		return models.TodoItem{}, ErrTodoNotFound
	}
	return *match, nil
}

func position(ref string) (int, bool) {
	if ref == "" || len(ref) > 3 {
		return 0, false
	}
	n := 0
	for _, r := range ref {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
