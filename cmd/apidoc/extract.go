package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/apidoc"
	"github.com/fwojciec/apidoc/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   apidoc.Fetcher
	Parser    apidoc.Parser
	Extractor apidoc.Extractor
	Encoder   apidoc.Encoder
}

// ExtractCmd extracts the catalogue of one documentation page and writes
// the result, successful or not, to Output.
type ExtractCmd struct {
	URL    string
	Output string
}

// Run executes the extract command. A failed extraction is still written
// as an error result before Run returns the error.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	catalogue, err := c.extract(deps)

	result := apidoc.NewResult(catalogue)
	if err != nil {
		result = apidoc.NewErrorResult(err)
	}

	if werr := c.write(deps, result); werr != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, werr)
	}

	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if c.Output != "-" {
		fmt.Fprintf(deps.Stdout, "Wrote %d sections, %d endpoints to %s\n",
			catalogue.Len(), catalogue.EndpointCount(), c.Output)
	}
	return nil
}

// extract runs resolve base URL -> fetch -> parse -> extract.
func (c *ExtractCmd) extract(deps *Dependencies) (*apidoc.Catalogue, error) {
	base, err := apidoc.ResolveBaseURL(c.URL)
	if err != nil {
		return nil, err
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, base.String())
	if err != nil {
		return nil, err
	}

	doc, err := deps.Parser.Parse(html)
	if err != nil {
		return nil, err
	}

	return deps.Extractor.Extract(doc, base)
}

func (c *ExtractCmd) write(deps *Dependencies, result *apidoc.Result) error {
	if c.Output == "-" {
		return deps.Encoder.Encode(deps.Stdout, result)
	}
	return fs.NewWriter(deps.Encoder).WriteResult(c.Output, result)
}
