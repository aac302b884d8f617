package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// LoggingProvider is a decorator that logs every raw LLM request with
// latency, token usage, and estimated cost. The service keeps no on-disk
// state, so the structured log is the system of record for spend.
type LoggingProvider struct {
	inner Provider
	log   zerolog.Logger
}

// WithLogging wraps a Provider with structured request logging.
func WithLogging(p Provider, log zerolog.Logger) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	ev := l.log.Info()
	if err != nil {
		ev = l.log.Error().Err(err)
	}
	ev = ev.
		Str("purpose", PurposeFrom(ctx)).
		Str("model", l.inner.ModelID()).
		Dur("latency", time.Since(start))

	if resp != nil {
		ev = ev.
			Int("input_tokens", resp.Usage.InputTokens).
			Int("output_tokens", resp.Usage.OutputTokens).
			Str("stop_reason", resp.StopReason)
		if cost := LookupCost(resp.Model); cost != nil {
			ev = ev.Float64("est_cost_usd", cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
		}
	}
	ev.Msg("llm request")

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
