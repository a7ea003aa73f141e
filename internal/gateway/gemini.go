package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/julianstephens/myday/internal/constants"
	apperrors "github.com/julianstephens/myday/internal/errors"
	"github.com/julianstephens/myday/internal/logger"
	"github.com/julianstephens/myday/internal/models"
)

// ErrMissingAPIKey is wrapped in the GatewayError returned when no key is configured.
var ErrMissingAPIKey = errors.New("no Gemini API key configured")

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 4 << 20

// Config configures a GeminiClient. Zero values fall back to defaults.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	// Timeout bounds each call. Zero means no timeout beyond the caller's context.
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	HTTPClient        *http.Client
}

// GeminiClient implements Gateway against the Gemini generateContent REST API.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
	http    *http.Client
}

var _ Gateway = (*GeminiClient)(nil)

// NewGeminiClient validates cfg and builds a client.
func NewGeminiClient(cfg Config) (*GeminiClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &apperrors.GatewayError{Op: "configure", Err: ErrMissingAPIKey}
	}
	if cfg.Model == "" {
		cfg.Model = constants.DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = constants.DefaultGeminiBaseURL
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = constants.GatewayRequestsPerSec
	}
	if cfg.Burst <= 0 {
		cfg.Burst = constants.GatewayBurst
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{
			Transport: &http.Transport{
				Proxy:           http.ProxyFromEnvironment,
				IdleConnTimeout: constants.GatewayIdleConnTimeout,
			},
		}
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, &apperrors.GatewayError{Op: "configure", Err: fmt.Errorf("invalid base URL: %w", err)}
	}

	return &GeminiClient{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		http:    cfg.HTTPClient,
	}, nil
}

// Model returns the model name requests are sent to.
func (c *GeminiClient) Model() string {
	return c.model
}

// Analyze asks the model for a summary, positive aspects, reflection questions
// and key takeaways. Empty lists are valid; missing fields are not.
func (c *GeminiClient) Analyze(ctx context.Context, text string) (models.Insights, error) {
	const op = "analyze"
	if err := models.ValidateEntryText(text); err != nil {
		return models.Insights{}, &apperrors.GatewayError{Op: op, Err: err}
	}

	raw, err := c.generate(ctx, op, fmt.Sprintf(constants.AnalyzePrompt, text), constants.AnalyzeTemperature, insightsSchema)
	if err != nil {
		return models.Insights{}, err
	}

	var payload insightsPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return models.Insights{}, &apperrors.GatewayError{Op: op, Err: fmt.Errorf("invalid JSON in model output: %w", err)}
	}
	if missing := payload.missing(); len(missing) > 0 {
		return models.Insights{}, &apperrors.GatewayError{Op: op, Err: fmt.Errorf("model output missing %s", strings.Join(missing, ", "))}
	}

	return models.NewInsights(*payload.Summary, *payload.PositiveAspects, *payload.AreasForReflection, *payload.KeyTakeaways), nil
}

// Suggest asks the model for wellness tips.
func (c *GeminiClient) Suggest(ctx context.Context, text string) ([]string, error) {
	const op = "suggest"
	if err := models.ValidateEntryText(text); err != nil {
		return nil, &apperrors.GatewayError{Op: op, Err: err}
	}

	raw, err := c.generate(ctx, op, fmt.Sprintf(constants.SuggestPrompt, text), constants.SuggestTemperature, suggestionsSchema)
	if err != nil {
		return nil, err
	}

	var payload suggestionsPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &apperrors.GatewayError{Op: op, Err: fmt.Errorf("invalid JSON in model output: %w", err)}
	}
	if payload.Suggestions == nil {
		return nil, &apperrors.GatewayError{Op: op, Err: errors.New("model output missing suggestions")}
	}

	tips := make([]string, 0, len(*payload.Suggestions))
	for _, tip := range *payload.Suggestions {
		if tip = strings.TrimSpace(tip); tip != "" {
			tips = append(tips, tip)
		}
	}
	return tips, nil
}

// generate performs one generateContent call and returns the candidate text.
func (c *GeminiClient) generate(ctx context.Context, op, prompt string, temperature float64, sch *schema) ([]byte, error) {
	fail := func(err error) ([]byte, error) {
		logger.Warn("Gemini request failed", "op", op, "model", c.model, "error", err)
		return nil, &apperrors.GatewayError{Op: op, Err: err}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fail(fmt.Errorf("rate limiter: %w", err))
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:      temperature,
			ResponseMIMEType: "application/json",
			ResponseSchema:   sch,
		},
	})
	if err != nil {
		return fail(fmt.Errorf("failed to encode request: %w", err))
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fail(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fail(fmt.Errorf("failed to send request: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fail(fmt.Errorf("failed to read response: %w", err))
	}
	logger.Debug("Gemini response", "op", op, "status", resp.StatusCode, "elapsed", time.Since(start))

	var parsed generateResponse
	decodeErr := json.Unmarshal(respBody, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && parsed.Error != nil {
			return fail(fmt.Errorf("API error %d (%s): %s", parsed.Error.Code, parsed.Error.Status, parsed.Error.Message))
		}
		return fail(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	if decodeErr != nil {
		return fail(fmt.Errorf("failed to decode response: %w", decodeErr))
	}
	if parsed.Error != nil {
		return fail(fmt.Errorf("API error %d (%s): %s", parsed.Error.Code, parsed.Error.Status, parsed.Error.Message))
	}
	if len(parsed.Candidates) == 0 {
		return fail(errors.New("response has no candidates"))
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return fail(fmt.Errorf("empty model output (finish reason %q)", parsed.Candidates[0].FinishReason))
	}
	return []byte(text), nil
}

func (p insightsPayload) missing() []string {
	var fields []string
	if p.Summary == nil {
		fields = append(fields, "summary")
	}
	if p.PositiveAspects == nil {
		fields = append(fields, "positive_aspects")
	}
	if p.AreasForReflection == nil {
		fields = append(fields, "areas_for_reflection")
	}
	if p.KeyTakeaways == nil {
		fields = append(fields, "key_takeaways")
	}
	return fields
}
