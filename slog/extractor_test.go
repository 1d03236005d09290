package slog_test

import (
	"bytes"
	"log/slog"
	"net/url"
	"testing"

	"github.com/fwojciec/apidoc"
	"github.com/fwojciec/apidoc/mock"
	apidocslog "github.com/fwojciec/apidoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	base, err := url.Parse("https://apidocs.okdesk.com/apidoc")
	require.NoError(t, err)

	t.Run("logs catalogue size", func(t *testing.T) {
		t.Parallel()

		s := apidoc.NewSection("Issues")
		s.Set(&apidoc.Endpoint{Name: "List issues"})
		s.Set(&apidoc.Endpoint{Name: "Create issue"})
		want := apidoc.NewCatalogue()
		want.Set(s)

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(doc *apidoc.Element, b *url.URL) (*apidoc.Catalogue, error) {
				return want, nil
			},
		}

		got, err := apidocslog.NewLoggingExtractor(inner, logger).Extract(apidoc.NewElement("html", ""), base)

		require.NoError(t, err)
		assert.Same(t, want, got)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "base=https://apidocs.okdesk.com/apidoc")
		assert.Contains(t, output, "sections=1")
		assert.Contains(t, output, "endpoints=2")
	})

	t.Run("logs error code on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(doc *apidoc.Element, b *url.URL) (*apidoc.Catalogue, error) {
				return nil, apidoc.Errorf(apidoc.ELOOKUP, "endpoint not in navigation")
			},
		}

		c, err := apidocslog.NewLoggingExtractor(inner, logger).Extract(apidoc.NewElement("html", ""), base)

		require.Error(t, err)
		assert.Nil(t, c)
		output := buf.String()
		assert.Contains(t, output, "sections=0")
		assert.Contains(t, output, "code=lookup")
		assert.Contains(t, output, `err="endpoint not in navigation"`)
	})
}

// Ensure LoggingExtractor implements apidoc.Extractor at compile time.
var _ apidoc.Extractor = (*apidocslog.LoggingExtractor)(nil)
