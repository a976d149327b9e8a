package slog

import (
	"log/slog"
	"time"

	"github.com/mstolarski/emwiki"
)

// Ensure LoggingCharacterExtractor implements emwiki.CharacterExtractor.
var _ emwiki.CharacterExtractor = (*LoggingCharacterExtractor)(nil)

// LoggingCharacterExtractor wraps a CharacterExtractor with debug logging.
type LoggingCharacterExtractor struct {
	next   emwiki.CharacterExtractor
	logger *slog.Logger
}

// NewLoggingCharacterExtractor creates a new LoggingCharacterExtractor.
func NewLoggingCharacterExtractor(next emwiki.CharacterExtractor, logger *slog.Logger) *LoggingCharacterExtractor {
	return &LoggingCharacterExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
// A "no record" page logs at debug level since it is an expected,
// silently skipped case rather than a failure.
func (e *LoggingCharacterExtractor) Extract(html string) (c *emwiki.Character, err error) {
	defer func(begin time.Time) {
		if emwiki.ErrorCode(err) == emwiki.ENOTFOUND {
			e.logger.Debug("character extraction skipped",
				"duration", time.Since(begin),
			)
			return
		}
		var name string
		if c != nil {
			name = c.Name
		}
		e.logger.Info("character extraction",
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
