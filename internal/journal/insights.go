package journal

import (
	"context"
	"errors"

	apperrors "github.com/julianstephens/myday/internal/errors"
	"github.com/julianstephens/myday/internal/logger"
	"github.com/julianstephens/myday/internal/models"
)

// Analyzer produces insights for a piece of entry text.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (models.Insights, error)
}

// Suggester produces wellness tips for a piece of entry text.
type Suggester interface {
	Suggest(ctx context.Context, text string) ([]string, error)
}

// Analyze sends the entry text for key to the analyzer and merges the result
// into that same key, whatever the caller has moved on to meanwhile. Nothing
// is merged on failure.
func (s *Store) Analyze(ctx context.Context, key string, a Analyzer) (models.JournalEntry, error) {
	text := s.Get(key).Text
	if err := models.ValidateEntryText(text); err != nil {
		return models.JournalEntry{}, err
	}

	insights, err := a.Analyze(ctx, text)
	if err != nil {
		logger.Warn("Analysis failed", "date", key, "error", err)
		return models.JournalEntry{}, asGatewayError("analyze", err)
	}
	if !insights.Complete() {
		err := &apperrors.GatewayError{Op: "analyze", Err: errors.New("incomplete insights")}
		logger.Warn("Analysis failed", "date", key, "error", err)
		return models.JournalEntry{}, err
	}

	s.MergeInsights(key, insights)
	return s.Get(key), nil
}

// Suggest returns wellness tips for the entry text of key. Tips are not stored.
func (s *Store) Suggest(ctx context.Context, key string, sg Suggester) ([]string, error) {
	text := s.Get(key).Text
	if err := models.ValidateEntryText(text); err != nil {
		return nil, err
	}

	tips, err := sg.Suggest(ctx, text)
	if err != nil {
		logger.Warn("Suggestions failed", "date", key, "error", err)
		return nil, asGatewayError("suggest", err)
	}
	return tips, nil
}

func asGatewayError(op string, err error) error {
	var ge *apperrors.GatewayError
	if errors.As(err, &ge) {
		return err
	}
	return &apperrors.GatewayError{Op: op, Err: err}
}
