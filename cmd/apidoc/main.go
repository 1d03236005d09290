package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/apidoc"
	"github.com/fwojciec/apidoc/extract"
	"github.com/fwojciec/apidoc/fs"
	"github.com/fwojciec/apidoc/goquery"
	apidochttp "github.com/fwojciec/apidoc/http"
	"github.com/fwojciec/apidoc/json"
	"github.com/fwojciec/apidoc/robotstxt"
	"github.com/fwojciec/apidoc/rod"
	apidocslog "github.com/fwojciec/apidoc/slog"
	"github.com/fwojciec/apidoc/yaml"
)

// DefaultURL is the documentation page extracted when no URL is given.
const DefaultURL = "https://apidocs.okdesk.com/apidoc"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("apidoc"),
		kong.Description("Extract the endpoint catalogue of an API documentation page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"default_url": DefaultURL},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// A bare path names a saved page.
	if u, err := url.Parse(cli.URL); err == nil && u.Scheme == "" {
		if cli.URL, err = fs.FileURL(cli.URL); err != nil {
			return err
		}
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Parser:    goquery.NewParser(),
		Extractor: extract.NewExtractor(),
	}

	switch cli.Format {
	case "yaml":
		deps.Encoder = yaml.NewEncoder()
	default:
		deps.Encoder = json.NewEncoder()
	}

	fetcher, err := newFetcher(cli, stderr)
	if err != nil {
		return err
	}
	defer fetcher.Close()
	deps.Fetcher = fetcher

	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Fetcher = apidocslog.NewLoggingFetcher(deps.Fetcher, logger)
		deps.Extractor = apidocslog.NewLoggingExtractor(deps.Extractor, logger)
	}

	cmd := &ExtractCmd{
		URL:    cli.URL,
		Output: cli.Output,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output    string        `short:"o" default:"okdesk_api_data.json" env:"APIDOC_OUTPUT" help:"Output file, or - for stdout"`
	Format    string        `short:"f" enum:"json,yaml" default:"json" env:"APIDOC_FORMAT" help:"Output format (json, yaml)"`
	Timeout   time.Duration `short:"t" default:"10s" env:"APIDOC_TIMEOUT" help:"Fetch timeout"`
	Retries   int           `default:"3" env:"APIDOC_RETRIES" help:"Retries for failed HTTP fetches"`
	Browser   bool          `short:"b" help:"Render the page in headless Chrome before extracting"`
	Robots    bool          `help:"Refuse to fetch pages disallowed by robots.txt"`
	UserAgent string        `default:"apidoc/1.0" env:"APIDOC_USER_AGENT" help:"User-Agent for HTTP requests"`
	Debug     bool          `short:"d" help:"Log pipeline stages to stderr"`
	URL       string        `arg:"" optional:"" default:"${default_url}" help:"Documentation page URL, or path of a saved page"`
}

// newFetcher selects the fetcher for the URL scheme and CLI options.
func newFetcher(cli *CLI, stderr io.Writer) (apidoc.Fetcher, error) {
	if u, err := url.Parse(cli.URL); err == nil && u.Scheme == "file" {
		return fs.NewFetcher(), nil
	}

	var fetcher apidoc.Fetcher
	if cli.Browser {
		f, err := rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithWaitSelector(extract.TagNav),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = apidochttp.NewFetcher(
			apidochttp.WithTimeout(cli.Timeout),
			apidochttp.WithUserAgent(cli.UserAgent),
			apidochttp.WithRetryDelays(retryDelays(cli.Retries)),
		)
	}

	if cli.Robots {
		fetcher = robotstxt.NewFetcher(fetcher, robotstxt.WithUserAgent(cli.UserAgent))
	}
	return fetcher, nil
}

// retryDelays returns n backoff delays doubling from one second.
func retryDelays(n int) []time.Duration {
	delays := make([]time.Duration, 0, max(n, 0))
	d := time.Second
	for i := 0; i < n; i++ {
		delays = append(delays, d)
		d *= 2
	}
	return delays
}
