// Package crawl provides the crawl traversal engine and download
// orchestration. It coordinates fetching, link extraction, admission
// control, and persistence of matched resources.
package crawl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fwojciec/sitegrab"
	"golang.org/x/sync/errgroup"
)

// Frontier sizing for Bloom filter deduplication.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Crawler runs crawl-and-download tasks.
type Crawler struct {
	Fetcher     sitegrab.Fetcher
	Extractor   sitegrab.LinkExtractor
	Store       sitegrab.Store
	RateLimiter sitegrab.DomainLimiter // optional
	Logger      *slog.Logger           // optional
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a run.
type Result struct {
	Visited   int                  // pages that returned a response during traversal
	Downloads []string             // links selected for download, in selection order
	Saved     []*sitegrab.SavedFile
	Failed    int                  // download failures
	Bytes     int64
}

// ProgressEvent reports progress during the download phase.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting download progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of fetching one page during traversal.
type pageResult struct {
	link    sitegrab.Link
	fetched bool     // a response was received (any status)
	links   []string // extracted hyperlinks, document order
	err     error
}

// Run executes a task: first the traversal phase builds the download set,
// then the download phase streams every selected link to the store.
// Per-URL download failures are reported via progress and counted in the
// result; they never abort the batch.
func (c *Crawler) Run(ctx context.Context, task *sitegrab.Task, progress ProgressFunc) (*Result, error) {
	if err := task.Validate(); err != nil {
		return nil, err
	}

	result, err := c.Traverse(ctx, task)
	if err != nil {
		return nil, err
	}

	c.download(ctx, task, result, progress)
	return result, nil
}

// Traverse runs the traversal phase only and returns the result with the
// download set populated. The shared visited/download sets span all seeds:
// a link visited while processing one seed is skipped if re-encountered
// under another.
func (c *Crawler) Traverse(ctx context.Context, task *sitegrab.Task) (*Result, error) {
	if err := task.Validate(); err != nil {
		return nil, err
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	for _, seed := range task.Seeds {
		frontier.Push(sitegrab.Link{URL: seed, Depth: 0})
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	// Channels for worker coordination
	workCh := make(chan sitegrab.Link, concurrency)
	resultCh := make(chan pageResult)

	// Workers fetch and extract; all admission decisions happen on the
	// coordinator so the shared sets need no extra locking.
	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for link := range workCh {
				res := c.fetchPage(ctx, task, link)
				select {
				case resultCh <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Close result channel when all workers are done
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	result := &Result{}
	downloadSet := make(map[string]struct{})

	// volumeReached reports whether the max-download bound is hit.
	volumeReached := func() bool {
		return task.MaxDownloads > 0 && len(downloadSet) >= task.MaxDownloads
	}

	handleResult := func(res pageResult) {
		if res.err != nil {
			// Transient fetch failure: the branch ends silently.
			if c.Logger != nil {
				c.Logger.Debug("traversal fetch failed", "url", res.link.URL, "err", res.err)
			}
			return
		}
		if res.fetched {
			result.Visited++
		}
		for _, raw := range res.links {
			// Volume guard re-check mid-iteration.
			if volumeReached() {
				break
			}

			link := task.Normalize(raw)

			// Download admission is independent of follow admission; a
			// selected link is never re-tested against the matcher.
			if _, selected := downloadSet[link]; !selected && task.Match.Match(link) {
				downloadSet[link] = struct{}{}
				result.Downloads = append(result.Downloads, link)
			}

			followLink, follow := task.PathRules.Admit(link)
			if !follow || task.Ignored(sitegrab.PathOf(link)) {
				continue
			}
			if !task.AdmitsDomain(sitegrab.HostOf(followLink)) {
				continue
			}
			frontier.Push(sitegrab.Link{URL: followLink, Depth: res.link.Depth + 1})
		}
	}

	// nextLink pulls the next dispatchable link from the frontier,
	// applying the depth guard and domain admission.
	nextLink := func() *sitegrab.Link {
		for {
			link, ok := frontier.Pop()
			if !ok {
				return nil
			}
			if task.MaxDepth > 0 && link.Depth >= task.MaxDepth {
				continue
			}
			if !task.AdmitsDomain(sitegrab.HostOf(link.URL)) {
				continue
			}
			return &link
		}
	}

	// Coordinator loop
	pending := 0
	next := nextLink()

coordinatorLoop:
	for {
		if volumeReached() {
			next = nil
		}
		if next == nil && pending == 0 {
			break coordinatorLoop
		}
		if ctx.Err() != nil {
			break coordinatorLoop
		}

		if next != nil {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case workCh <- *next:
				pending++
				next = nil
			case res := <-resultCh:
				pending--
				handleResult(res)
			}
		} else {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case res, ok := <-resultCh:
				if !ok {
					break coordinatorLoop
				}
				pending--
				handleResult(res)
			}
		}

		if next == nil && !volumeReached() {
			next = nextLink()
		}
	}

	// Signal workers to stop and drain remaining results
	close(workCh)

	drainTimeout := time.After(5 * time.Second)
drainLoop:
	for {
		select {
		case res, ok := <-resultCh:
			if !ok {
				break drainLoop
			}
			handleResult(res)
		case <-drainTimeout:
			break drainLoop
		}
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// fetchPage fetches one admitted URL and extracts its outbound links.
// Extra query parameters are injected into the fetched URL only; discovered
// links are handed back raw for the coordinator to normalize and admit.
func (c *Crawler) fetchPage(ctx context.Context, task *sitegrab.Task, link sitegrab.Link) pageResult {
	res := pageResult{link: link}

	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, sitegrab.HostOf(link.URL)); err != nil {
			res.err = err
			return res
		}
	}

	fetchURL := task.InjectQuery(link.URL)

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	resp, err := FetchWithRetryDelays(ctx, fetchURL, c.Fetcher.Fetch, delays)
	if err != nil {
		res.err = err
		return res
	}
	res.fetched = true

	if !resp.Success() || !resp.IsHTML() {
		return res
	}

	links, err := c.Extractor.ExtractLinks(resp.Body, fetchURL)
	if err != nil {
		if c.Logger != nil {
			c.Logger.Debug("link extraction failed", "url", fetchURL, "err", err)
		}
		return res
	}
	res.links = links
	return res
}

// downloadResult holds the outcome of downloading a single URL.
type downloadResult struct {
	url   string
	saved *sitegrab.SavedFile
	err   error
}

// download streams every selected link to the store, concurrently.
func (c *Crawler) download(ctx context.Context, task *sitegrab.Task, result *Result, progress ProgressFunc) {
	urls := result.Downloads
	if len(urls) == 0 {
		if progress != nil {
			progress(ProgressEvent{Type: ProgressFinished})
		}
		return
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan downloadResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, url := range urls {
			url := url
			g.Go(func() error {
				resultCh <- c.downloadOne(gctx, url)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	completed := 0
	for res := range resultCh {
		completed++
		if res.err != nil {
			result.Failed++
			if c.Logger != nil {
				c.Logger.Warn("download failed", "url", res.url, "err", res.err)
			}
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: completed,
					Total:     total,
					URL:       res.url,
					Error:     res.err,
				})
			}
			continue
		}

		result.Saved = append(result.Saved, res.saved)
		result.Bytes += res.saved.Size
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     total,
				URL:       res.url,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
}

// downloadOne streams a single URL to the store.
func (c *Crawler) downloadOne(ctx context.Context, url string) downloadResult {
	res := downloadResult{url: url}

	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, sitegrab.HostOf(url)); err != nil {
			res.err = err
			return res
		}
	}

	body, err := c.Fetcher.Stream(ctx, url)
	if err != nil {
		res.err = err
		return res
	}
	defer body.Close()

	saved, err := c.Store.Save(ctx, url, body)
	if err != nil {
		res.err = err
		return res
	}
	res.saved = saved
	return res
}
