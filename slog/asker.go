package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/agentev"
)

// Ensure LoggingAsker implements agentev.Asker.
var _ agentev.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with logging. The answer text is not logged.
type LoggingAsker struct {
	next   agentev.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next agentev.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs the operation.
func (a *LoggingAsker) Ask(ctx context.Context, question string) (answer string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("ask",
			"question", question,
			"chars", len(answer),
			"code", agentev.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, question)
}
