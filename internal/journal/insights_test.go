package journal

import (
	"context"
	"errors"
	"reflect"
	"testing"

	apperrors "github.com/julianstephens/myday/internal/errors"
	"github.com/julianstephens/myday/internal/models"
)

type fakeGateway struct {
	insights models.Insights
	tips     []string
	err      error
	calls    int
	during   func() // runs while the call is "in flight"
}

func (f *fakeGateway) Analyze(ctx context.Context, text string) (models.Insights, error) {
	f.calls++
	if f.during != nil {
		f.during()
	}
	return f.insights, f.err
}

func (f *fakeGateway) Suggest(ctx context.Context, text string) ([]string, error) {
	f.calls++
	if f.during != nil {
		f.during()
	}
	return f.tips, f.err
}

func TestAnalyzeMergesCompleteGroup(t *testing.T) {
	s := New(nil)
	s.UpdateContent(day, "Great day!", models.MoodHappy, KeepImage())
	s.UpdateTodos(day, []models.TodoItem{{ID: "1", Text: "Walk"}})

	gw := &fakeGateway{insights: models.NewInsights("Good.", []string{"sun"}, []string{}, []string{"rest"})}
	e, err := s.Analyze(context.Background(), day, gw)
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if !e.Complete() || *e.Summary != "Good." {
		t.Errorf("insights not merged: %+v", e.Insights)
	}
	if e.Text != "Great day!" || len(e.Todos) != 1 {
		t.Error("Analyze() touched non-insight fields")
	}
}

func TestAnalyzeFailureLeavesEntryUnmodified(t *testing.T) {
	s := New(nil)
	s.UpdateContent(day, "Great day!", models.MoodHappy, KeepImage())
	s.MergeInsights(day, models.NewInsights("old", []string{"a"}, nil, nil))
	before := s.Entries()

	tests := []struct {
		name string
		gw   *fakeGateway
	}{
		{name: "gateway error", gw: &fakeGateway{err: errors.New("network down")}},
		{name: "incomplete result", gw: &fakeGateway{insights: models.Insights{Summary: strPtr("partial")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Analyze(context.Background(), day, tt.gw)
			if !apperrors.IsGateway(err) {
				t.Errorf("Analyze() error = %v, want GatewayError", err)
			}
			if !reflect.DeepEqual(before, s.Entries()) {
				t.Error("failed analysis modified the store")
			}
		})
	}
}

func TestAnalyzeRejectsEmptyText(t *testing.T) {
	s := New(nil)
	gw := &fakeGateway{insights: models.NewInsights("x", nil, nil, nil)}

	_, err := s.Analyze(context.Background(), day, gw)
	if !apperrors.IsValidation(err) {
		t.Errorf("Analyze() error = %v, want ValidationError", err)
	}
	if gw.calls != 0 {
		t.Error("gateway called for empty text")
	}
	if s.Has(day) {
		t.Error("rejected analysis created an entry")
	}
}

func TestLateResultMergesIntoCapturedKey(t *testing.T) {
	s := New(nil)
	s.UpdateContent(day, "Monday thoughts", models.MoodNeutral, KeepImage())

	other := "2024-03-02"
	gw := &fakeGateway{insights: models.NewInsights("Monday.", nil, nil, nil)}
	gw.during = func() {
		// the user moves to another day and edits both while waiting
		s.UpdateContent(other, "Tuesday", models.MoodHappy, KeepImage())
		s.UpdateContent(day, "Monday thoughts, edited", models.MoodSad, KeepImage())
	}

	if _, err := s.Analyze(context.Background(), day, gw); err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	if s.Get(other).Analyzed() {
		t.Error("result merged into the day the user moved to")
	}
	got := s.Get(day)
	if !got.Analyzed() {
		t.Error("result not merged into the captured day")
	}
	if got.Text != "Monday thoughts, edited" || got.Mood != models.MoodSad {
		t.Errorf("merge clobbered an edit made during the call: %+v", got)
	}
}

func TestSuggest(t *testing.T) {
	s := New(nil)
	s.UpdateContent(day, "Tired", models.MoodSad, KeepImage())
	before := s.Entries()

	tips, err := s.Suggest(context.Background(), day, &fakeGateway{tips: []string{"Sleep", "Walk"}})
	if err != nil {
		t.Fatalf("Suggest() error: %v", err)
	}
	if len(tips) != 2 {
		t.Errorf("Suggest() = %v", tips)
	}
	if !reflect.DeepEqual(before, s.Entries()) {
		t.Error("Suggest() modified the store")
	}

	_, err = s.Suggest(context.Background(), day, &fakeGateway{err: &apperrors.GatewayError{Op: "suggest", Err: errors.New("boom")}})
	var ge *apperrors.GatewayError
	if !errors.As(err, &ge) || ge.Op != "suggest" {
		t.Errorf("Suggest() error = %v, want suggest GatewayError", err)
	}

	if _, err := s.Suggest(context.Background(), "2024-05-05", &fakeGateway{}); !apperrors.IsValidation(err) {
		t.Errorf("Suggest() on empty day error = %v, want ValidationError", err)
	}
}
