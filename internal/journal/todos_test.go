package journal

import (
	"errors"
	"reflect"
	"testing"

	apperrors "github.com/julianstephens/myday/internal/errors"
	"github.com/julianstephens/myday/internal/models"
)

func TestTodoLifecycle(t *testing.T) {
	s := New(nil)

	walk, err := s.AddTodo(day, "Walk")
	if err != nil {
		t.Fatalf("AddTodo() error: %v", err)
	}
	read, err := s.AddTodo(day, "Read")
	if err != nil {
		t.Fatalf("AddTodo() error: %v", err)
	}
	if walk.ID == read.ID {
		t.Fatal("to-do IDs are not unique")
	}

	if _, err := s.ToggleTodo(day, walk.ID); err != nil {
		t.Fatalf("ToggleTodo() error: %v", err)
	}
	if err := s.DeleteTodo(day, read.ID); err != nil {
		t.Fatalf("DeleteTodo() error: %v", err)
	}

	want := []models.TodoItem{{ID: walk.ID, Text: "Walk", Completed: true}}
	if got := s.Get(day).Todos; !reflect.DeepEqual(got, want) {
		t.Errorf("todos = %+v, want %+v", got, want)
	}

	toggled, _ := s.ToggleTodo(day, walk.ID)
	if toggled.Completed {
		t.Error("second toggle did not reopen the to-do")
	}
}

func TestAddTodoRejectsBlank(t *testing.T) {
	s := New(nil)
	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := s.AddTodo(day, text)
		if !apperrors.IsValidation(err) {
			t.Errorf("AddTodo(%q) error = %v, want ValidationError", text, err)
		}
	}
	if s.Has(day) {
		t.Error("rejected AddTodo created an entry")
	}
}

func TestUnknownTodo(t *testing.T) {
	s := New(nil)
	s.AddTodo(day, "Walk")
	before := s.Entries()

	if _, err := s.ToggleTodo(day, "missing"); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("ToggleTodo() error = %v, want ErrTodoNotFound", err)
	}
	if err := s.DeleteTodo(day, "missing"); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("DeleteTodo() error = %v, want ErrTodoNotFound", err)
	}
	if !reflect.DeepEqual(before, s.Entries()) {
		t.Error("failed to-do operation changed the store")
	}
}

func TestDeleteKeepsOrder(t *testing.T) {
	s := New(nil)
	a, _ := s.AddTodo(day, "a")
	b, _ := s.AddTodo(day, "b")
	c, _ := s.AddTodo(day, "c")

	if err := s.DeleteTodo(day, b.ID); err != nil {
		t.Fatal(err)
	}
	todos := s.Get(day).Todos
	if len(todos) != 2 || todos[0].ID != a.ID || todos[1].ID != c.ID {
		t.Errorf("order not preserved: %+v", todos)
	}
}

func TestFindTodo(t *testing.T) {
	s := New(nil)
	s.UpdateTodos(day, []models.TodoItem{
		{ID: "0190aaaa-0001", Text: "one"},
		{ID: "0190aaaa-0002", Text: "two"},
		{ID: "0190bbbb-0003", Text: "three"},
	})

	tests := []struct {
		ref     string
		want    string
		wantErr bool
	}{
		{ref: "1", want: "one"},
		{ref: "3", want: "three"},
		{ref: "4", wantErr: true},
		{ref: "0", wantErr: true},
		{ref: "0190aaaa-0002", want: "two"},
		{ref: "0190bbbb", want: "three"},
		{ref: "0190aaaa", wantErr: true}, // ambiguous
		{ref: "zzzz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := s.FindTodo(day, tt.ref)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FindTodo(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			}
			if !tt.wantErr && got.Text != tt.want {
				t.Errorf("FindTodo(%q) = %q, want %q", tt.ref, got.Text, tt.want)
			}
		})
	}
}
