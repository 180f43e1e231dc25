package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubProvider struct {
	text  string
	err   error
	delay time.Duration
}

func (s *stubProvider) GenerateInsights(ctx context.Context, prompt string) (string, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.text, s.err
}

func TestFetchInsightsSuccess(t *testing.T) {
	p := &stubProvider{text: "The market for this item is stable."}
	got := FetchInsights(context.Background(), p, "prompt", time.Second)
	assert.Equal(t, "The market for this item is stable.", got)
}

func TestFetchInsightsProviderError(t *testing.T) {
	p := &stubProvider{err: errors.New("quota exceeded")}
	got := FetchInsights(context.Background(), p, "prompt", time.Second)
	assert.Equal(t, "Error fetching AI insights: quota exceeded", got)
}

func TestFetchInsightsNilProvider(t *testing.T) {
	got := FetchInsights(context.Background(), nil, "prompt", time.Second)
	assert.Equal(t, "Error fetching AI insights: provider not configured", got)
}

func TestFetchInsightsTimeout(t *testing.T) {
	p := &stubProvider{text: "too late", delay: time.Second}
	got := FetchInsights(context.Background(), p, "prompt", 10*time.Millisecond)
	assert.Contains(t, got, ErrorPrefix)
	assert.Contains(t, got, context.DeadlineExceeded.Error())
}
