package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrorPrefix starts the insights text whenever the provider call failed.
// Clients can check for it to detect degraded responses.
const ErrorPrefix = "Error fetching AI insights: "

// InsightProvider generates market commentary for a prepared prompt.
type InsightProvider interface {
	GenerateInsights(ctx context.Context, prompt string) (string, error)
}

// FetchInsights runs the provider with a hard timeout and converts any
// failure into readable text instead of an error. A provider outage or an
// unconfigured key degrades the insights field but never fails the request.
func FetchInsights(ctx context.Context, provider InsightProvider, prompt string, timeout time.Duration) string {
	if provider == nil {
		log.Warn().Msg("insight provider not configured, skipping llm call")
		return ErrorPrefix + "provider not configured"
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := provider.GenerateInsights(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Msg("insight provider call failed")
		return ErrorPrefix + err.Error()
	}
	return text
}
