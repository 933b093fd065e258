package llm

import (
	"context"
	"log"
	"time"
)

// LoggingProvider is a decorator that records every request on the standard
// logger: purpose, latency, token usage, and outcome.
type LoggingProvider struct {
	inner  Provider
	logger *log.Logger
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, logger *log.Logger) Provider {
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latency := time.Since(start).Round(time.Millisecond)

	if err != nil {
		l.logger.Printf("llm: purpose=%s model=%s latency=%s error=%v",
			purpose, l.inner.ModelID(), latency, err)
		return nil, err
	}

	l.logger.Printf("llm: purpose=%s model=%s latency=%s tokens=%d/%d stop=%s",
		purpose, resp.Model, latency,
		resp.Usage.InputTokens, resp.Usage.OutputTokens, resp.StopReason)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
