package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitegrab/crawl"
	"github.com/fwojciec/sitegrab/fs"
	"github.com/fwojciec/sitegrab/goquery"
	grabhttp "github.com/fwojciec/sitegrab/http"
	grabslog "github.com/fwojciec/sitegrab/slog"
)

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
		kong.Name("sitegrab"),
		kong.Description("Crawl a site and download matching resources"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	task, err := cli.Task()
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire the fetcher
	fetcherOpts := []grabhttp.Option{grabhttp.WithTimeout(cli.Timeout)}
	if cli.UserAgent != "" {
		fetcherOpts = append(fetcherOpts, grabhttp.WithUserAgent(cli.UserAgent))
	}
	if cookies, err := pairMap(cli.Cookie, "="); err != nil {
		return err
	} else if cookies != nil {
		fetcherOpts = append(fetcherOpts, grabhttp.WithCookies(cookies))
	}
	if headers, err := pairMap(cli.Header, ":"); err != nil {
		return err
	} else if headers != nil {
		fetcherOpts = append(fetcherOpts, grabhttp.WithHeaders(headers))
	}
	httpFetcher := grabhttp.NewFetcher(fetcherOpts...)
	defer httpFetcher.Close()

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Crawler: &crawl.Crawler{
			Fetcher:     grabslog.NewLoggingFetcher(httpFetcher, logger),
			Extractor:   goquery.NewExtractor(),
			Store:       grabslog.NewLoggingStore(fs.NewDirStore(cli.Out), logger),
			RateLimiter: crawl.NewDomainLimiter(cli.RPS),
			Logger:      logger,
			Concurrency: cli.Concurrency,
		},
	}

	if cli.Sitemap {
		deps.Seeds = grabhttp.NewSitemapSource(nil)
	}

	cmd := &GrabCmd{Task: task}
	return cmd.Run(deps)
}
