package slog

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/apidoc"
)

// Ensure LoggingExtractor implements apidoc.Extractor.
var _ apidoc.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   apidoc.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next apidoc.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the catalogue size.
func (x *LoggingExtractor) Extract(doc *apidoc.Element, base *url.URL) (c *apidoc.Catalogue, err error) {
	defer func(begin time.Time) {
		var sections, endpoints int
		if c != nil {
			sections, endpoints = c.Len(), c.EndpointCount()
		}
		x.logger.Info("extract",
			"base", base.String(),
			"sections", sections,
			"endpoints", endpoints,
			"duration", time.Since(begin),
			"code", apidoc.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return x.next.Extract(doc, base)
}
