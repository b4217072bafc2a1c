package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/agentev"
)

// Ensure LoggingEncyclopedia implements agentev.Encyclopedia.
var _ agentev.Encyclopedia = (*LoggingEncyclopedia)(nil)

// LoggingEncyclopedia wraps an Encyclopedia with logging.
type LoggingEncyclopedia struct {
	next   agentev.Encyclopedia
	logger *slog.Logger
}

// NewLoggingEncyclopedia creates a new LoggingEncyclopedia.
func NewLoggingEncyclopedia(next agentev.Encyclopedia, logger *slog.Logger) *LoggingEncyclopedia {
	return &LoggingEncyclopedia{next: next, logger: logger}
}

// Lookup delegates to the wrapped encyclopedia and logs the operation.
func (e *LoggingEncyclopedia) Lookup(ctx context.Context, term string) (article *agentev.Article, err error) {
	defer func(begin time.Time) {
		title := ""
		if article != nil {
			title = article.Title
		}
		e.logger.Info("encyclopedia lookup",
			"term", term,
			"title", title,
			"code", agentev.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Lookup(ctx, term)
}
