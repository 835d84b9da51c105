// Package summarize contains the provider fallback orchestrator. It walks an
// ordered list of provider adapters until one produces a usable analysis and
// terminates on the local fallback generator, which cannot fail. The public
// contract has no failure outcome: every call returns a displayable string.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/upb/meeting-summarizer/services/providers"
	"github.com/upb/meeting-summarizer/services/providers/demo"
)

// Service orchestrates the provider fallback chain
type Service struct {
	providers []providers.Provider
	fallback  *demo.Generator
	logger    *zap.Logger
}

// NewService creates a new orchestrator over the given ordered provider list.
// Providers are tried strictly in slice order; the demo generator is the
// terminal fallback and is not part of the list.
func NewService(chain []providers.Provider, fallback *demo.Generator, logger *zap.Logger) *Service {
	return &Service{
		providers: chain,
		fallback:  fallback,
		logger:    logger,
	}
}

// ProcessTranscript runs the transcript through the provider chain and
// returns the first usable analysis. It never returns an error: adapter
// faults and quota conditions advance the chain, and total exhaustion is
// resolved by the local fallback generator.
func (s *Service) ProcessTranscript(ctx context.Context, transcript string) string {
	if strings.TrimSpace(transcript) == "" {
		return demo.BlankTranscriptWarning
	}

	callID := uuid.New()
	start := time.Now()

	s.logger.Info("starting summarization",
		zap.String("call_id", callID.String()),
		zap.Int("provider_count", len(s.providers)))

	for _, provider := range s.providers {
		result, err := s.invoke(ctx, provider, transcript)

		switch {
		case errors.Is(err, providers.ErrNotConfigured):
			s.logger.Debug("provider not configured, skipping",
				zap.String("call_id", callID.String()),
				zap.String("provider", provider.Name()))
			continue

		case err != nil:
			s.logger.Warn("provider failed, trying next",
				zap.String("call_id", callID.String()),
				zap.String("provider", provider.Name()),
				zap.Error(err))
			continue

		case result == "":
			s.logger.Debug("provider returned empty result, trying next",
				zap.String("call_id", callID.String()),
				zap.String("provider", provider.Name()))
			continue

		case providers.IsQuotaCondition(result):
			s.logger.Warn("provider quota exceeded, trying next",
				zap.String("call_id", callID.String()),
				zap.String("provider", provider.Name()))
			continue
		}

		s.logger.Info("summarization succeeded",
			zap.String("call_id", callID.String()),
			zap.String("provider", provider.Name()),
			zap.Duration("latency", time.Since(start)))
		return result
	}

	s.logger.Info("all providers exhausted, using local fallback",
		zap.String("call_id", callID.String()))
	return s.fallback.Generate(transcript)
}

// invoke calls one provider, converting a panic into an error so a misbehaving
// adapter can never take the orchestrator down with it.
func (s *Service) invoke(ctx context.Context, provider providers.Provider, transcript string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = ""
			err = fmt.Errorf("provider %s panicked: %v", provider.Name(), r)
		}
	}()

	return provider.Summarize(ctx, transcript)
}
