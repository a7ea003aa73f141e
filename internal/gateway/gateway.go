// Package gateway talks to the generative model that turns entry text into
// insights and wellness tips.
package gateway

import (
	"context"

	"github.com/julianstephens/myday/internal/models"
)

// Gateway is the AI service contract. Implementations either return a
// complete result or a *errors.GatewayError, never a partial result.
type Gateway interface {
	Analyze(ctx context.Context, text string) (models.Insights, error)
	Suggest(ctx context.Context, text string) ([]string, error)
}
