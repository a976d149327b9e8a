// Package slog provides logging decorators for emwiki interfaces
// using the standard library's structured logger.
package slog

import (
	"log/slog"
	"time"

	"github.com/mstolarski/emwiki"
)

// Ensure LoggingLinkDiscoverer implements emwiki.LinkDiscoverer.
var _ emwiki.LinkDiscoverer = (*LoggingLinkDiscoverer)(nil)

// LoggingLinkDiscoverer wraps a LinkDiscoverer with debug logging.
type LoggingLinkDiscoverer struct {
	next   emwiki.LinkDiscoverer
	logger *slog.Logger
}

// NewLoggingLinkDiscoverer creates a new LoggingLinkDiscoverer.
func NewLoggingLinkDiscoverer(next emwiki.LinkDiscoverer, logger *slog.Logger) *LoggingLinkDiscoverer {
	return &LoggingLinkDiscoverer{next: next, logger: logger}
}

// DiscoverLinks delegates to the wrapped discoverer and logs the outcome.
func (d *LoggingLinkDiscoverer) DiscoverLinks(html string) (links *emwiki.Links, err error) {
	defer func(begin time.Time) {
		var characters int
		var nextPage bool
		if links != nil {
			characters = len(links.Characters)
			nextPage = links.NextPage != ""
		}
		d.logger.Info("link discovery",
			"characters", characters,
			"next_page", nextPage,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.DiscoverLinks(html)
}
