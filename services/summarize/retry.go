package summarize

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/upb/meeting-summarizer/services/providers"
)

// Summarizer is the orchestrator contract the retry wrapper operates on
type Summarizer interface {
	ProcessTranscript(ctx context.Context, transcript string) string
}

// Retrier wraps a full orchestrator pass with bounded retries. When a pass
// resolves to a quota-classified result and attempts remain, it waits out the
// delay and reruns the whole chain from the top (not just the failing
// provider). Not wired into the HTTP entry point; kept as a documented
// capability for callers that want to ride out short rate-limit windows.
type Retrier struct {
	inner  Summarizer
	logger *zap.Logger
	sleep  func(time.Duration)
}

// NewRetrier creates a retry wrapper around an orchestrator
func NewRetrier(inner Summarizer, logger *zap.Logger) *Retrier {
	return &Retrier{
		inner:  inner,
		logger: logger,
		sleep:  time.Sleep,
	}
}

// ProcessTranscript runs up to maxAttempts full orchestrator passes, sleeping
// delay between quota-classified passes. After the attempts are spent the
// last result is returned as-is.
func (r *Retrier) ProcessTranscript(ctx context.Context, transcript string, maxAttempts int, delay time.Duration) string {
	var result string

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		var err error
		result, err = r.attempt(ctx, transcript)
		if err != nil {
			r.logger.Warn("summarization pass failed",
				zap.Int("attempt", attempt),
				zap.Error(err))
			if attempt == maxAttempts {
				return fmt.Sprintf("Error after %d attempts: %v", maxAttempts, err)
			}
			r.sleep(delay)
			continue
		}

		if !providers.IsQuotaCondition(result) {
			return result
		}

		if attempt < maxAttempts {
			r.logger.Warn("quota condition, retrying full pass",
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay))
			r.sleep(delay)
		}
	}

	return result
}

// attempt runs one pass, converting a panic from the inner summarizer into an
// error so the wrapper's own contract stays total.
func (r *Retrier) attempt(ctx context.Context, transcript string) (result string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			result = ""
			err = fmt.Errorf("summarization panicked: %v", rec)
		}
	}()

	return r.inner.ProcessTranscript(ctx, transcript), nil
}
