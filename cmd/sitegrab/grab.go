package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/sitegrab"
	"github.com/fwojciec/sitegrab/crawl"
	"github.com/schollz/progressbar/v3"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Crawler *crawl.Crawler
	Seeds   sitegrab.SeedSource // optional sitemap seed discovery
}

// GrabCmd runs a crawl-and-download task.
type GrabCmd struct {
	Task *sitegrab.Task
}

// Run executes the grab command: optionally expand seeds from the sitemap,
// traverse, then download with a progress bar. Per-URL download failures
// are reported and do not abort the batch.
func (c *GrabCmd) Run(deps *Dependencies) error {
	task := c.Task

	if deps.Seeds != nil {
		for _, seed := range c.Task.Seeds {
			discovered, err := deps.Seeds.DiscoverSeeds(deps.Ctx, seed)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "sitemap discovery failed for %s: %s\n", seed, sitegrab.ErrorMessage(err))
				continue
			}
			task.Seeds = append(task.Seeds, discovered...)
		}
	}

	var bar *progressbar.ProgressBar
	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Downloading %d files\n", event.Total)
			bar = progressbar.NewOptions(event.Total,
				progressbar.OptionSetWriter(deps.Stderr),
				progressbar.OptionSetDescription("downloading"),
				progressbar.OptionShowCount(),
			)
		case crawl.ProgressCompleted:
			if bar != nil {
				_ = bar.Add(1)
			}
		case crawl.ProgressFailed:
			if bar != nil {
				_ = bar.Add(1)
			}
			fmt.Fprintf(deps.Stderr, "\nskip %s: %v\n", event.URL, event.Error)
		case crawl.ProgressFinished:
			if bar != nil {
				_ = bar.Finish()
				fmt.Fprintln(deps.Stderr)
			}
		}
	}

	result, err := deps.Crawler.Run(deps.Ctx, task, progress)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Visited %d pages, saved %d files (%d bytes), %d failed\n",
		result.Visited, len(result.Saved), result.Bytes, result.Failed)
	return nil
}
