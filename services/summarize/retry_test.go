package summarize

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// scriptedSummarizer returns its results in order, then repeats the last one
type scriptedSummarizer struct {
	results []string
	panics  bool
	calls   int
}

func (s *scriptedSummarizer) ProcessTranscript(ctx context.Context, transcript string) string {
	s.calls++
	if s.panics {
		panic("orchestrator fault")
	}
	idx := s.calls - 1
	if idx >= len(s.results) {
		idx = len(s.results) - 1
	}
	return s.results[idx]
}

func newRetrier(inner Summarizer) (*Retrier, *[]time.Duration) {
	r := NewRetrier(inner, zap.NewNop())
	slept := &[]time.Duration{}
	r.sleep = func(d time.Duration) { *slept = append(*slept, d) }
	return r, slept
}

func TestRetrierReturnsUsableResultImmediately(t *testing.T) {
	inner := &scriptedSummarizer{results: []string{"the answer"}}
	r, slept := newRetrier(inner)

	result := r.ProcessTranscript(context.Background(), "transcript", 3, time.Minute)

	assert.Equal(t, "the answer", result)
	assert.Equal(t, 1, inner.calls)
	assert.Empty(t, *slept)
}

func TestRetrierSleepsBetweenQuotaPasses(t *testing.T) {
	inner := &scriptedSummarizer{results: []string{
		"Quota exceeded",
		"rate limit exceeded",
		"the answer",
	}}
	r, slept := newRetrier(inner)

	result := r.ProcessTranscript(context.Background(), "transcript", 3, time.Minute)

	assert.Equal(t, "the answer", result)
	assert.Equal(t, 3, inner.calls)
	assert.Equal(t, []time.Duration{time.Minute, time.Minute}, *slept, "no sleep after the usable pass")
}

func TestRetrierReturnsLastQuotaResultAfterMaxAttempts(t *testing.T) {
	inner := &scriptedSummarizer{results: []string{"Quota exceeded"}}
	r, slept := newRetrier(inner)

	result := r.ProcessTranscript(context.Background(), "transcript", 3, time.Second)

	assert.Equal(t, "Quota exceeded", result)
	assert.Equal(t, 3, inner.calls)
	assert.Len(t, *slept, 2, "no sleep after the final attempt")
}

func TestRetrierReportsFaultOnFinalAttempt(t *testing.T) {
	inner := &scriptedSummarizer{panics: true}
	r, slept := newRetrier(inner)

	result := r.ProcessTranscript(context.Background(), "transcript", 2, time.Second)

	assert.Contains(t, result, "Error after 2 attempts")
	assert.Equal(t, 2, inner.calls)
	assert.Len(t, *slept, 1)
}

func TestRetrierSingleAttempt(t *testing.T) {
	inner := &scriptedSummarizer{results: []string{"429 again"}}
	r, slept := newRetrier(inner)

	result := r.ProcessTranscript(context.Background(), "transcript", 1, time.Minute)

	assert.Equal(t, "429 again", result)
	assert.Equal(t, 1, inner.calls)
	assert.Empty(t, *slept)
}
