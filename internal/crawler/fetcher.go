package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Renderer is the page-rendering collaborator: it turns a URL into raw
// markup. The concrete implementation drives a headless browser session
// that accumulates unrecoverable state (memory growth, wedged renderer
// processes) over time, so it must support teardown and recreation.
type Renderer interface {
	// Render loads the URL and returns the page source after scripts
	// have had a chance to run. The error covers timeouts and transport
	// failures alike.
	Render(ctx context.Context, url string) (string, error)

	// Recycle tears down the rendering session and creates a fresh one.
	Recycle(ctx context.Context) error

	// Close releases the session. Safe to call more than once.
	Close() error
}

// Fetcher wraps a Renderer with retry, backoff, and session-recycling
// policy. It is the only component that may fail a URL permanently.
//
// Design decision: All failure classes are retried uniformly. The tool
// treats "failed to produce markup" the same regardless of cause, because
// distinguishing timeout from renderer crash from transport error buys
// nothing: the remedy (recycle the session and try again) is identical.
type Fetcher struct {
	renderer Renderer

	// maxRetries is the number of render attempts per URL.
	maxRetries int

	// retryDelay is the wait between attempts. The session is recycled
	// during this window.
	retryDelay time.Duration

	// batchSize triggers a proactive session recycle every batchSize
	// successfully processed URLs. Resource hygiene, not error handling.
	batchSize int

	// processed counts URLs processed since the last recycle.
	processed int

	logger *slog.Logger
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithMaxRetries sets the number of render attempts per URL.
func WithMaxRetries(n int) FetcherOption {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxRetries = n
		}
	}
}

// WithRetryDelay sets the wait between render attempts.
func WithRetryDelay(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.retryDelay = d
	}
}

// WithBatchSize sets the proactive recycling interval in processed URLs.
func WithBatchSize(n int) FetcherOption {
	return func(f *Fetcher) {
		if n > 0 {
			f.batchSize = n
		}
	}
}

// WithFetchLogger sets a custom logger.
func WithFetchLogger(logger *slog.Logger) FetcherOption {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a Fetcher around the given renderer.
func NewFetcher(renderer Renderer, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		renderer:   renderer,
		maxRetries: 3,
		retryDelay: 5 * time.Second,
		batchSize:  25,
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.logger == nil {
		f.logger = slog.Default()
	}

	return f
}

// Fetch renders the URL, retrying up to the configured attempt count.
// Between attempts it waits the retry delay and recycles the rendering
// session, since a failed render often leaves the browser in a state
// that will fail again.
//
// The returned error wraps the last attempt's error once all attempts are
// exhausted. Callers count one page-level error per exhausted URL, never
// one per attempt.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= f.maxRetries; attempt++ {
		markup, err := f.renderer.Render(ctx, url)
		if err == nil {
			return markup, nil
		}
		lastErr = err

		if attempt == f.maxRetries {
			break
		}

		f.logger.Warn("fetch attempt failed, recycling session",
			"url", url,
			"attempt", attempt,
			"maxRetries", f.maxRetries,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.retryDelay):
		}

		if err := f.renderer.Recycle(ctx); err != nil {
			return "", fmt.Errorf("session recycle failed: %w", err)
		}
	}

	f.logger.Error("all fetch attempts failed", "url", url, "attempts", f.maxRetries)
	return "", fmt.Errorf("all %d attempts failed for %s: %w", f.maxRetries, url, lastErr)
}

// MarkProcessed records one successfully processed URL and performs the
// proactive batch recycle when due. Called by the generation phase after
// each URL, independent of failures.
func (f *Fetcher) MarkProcessed(ctx context.Context) error {
	f.processed++
	if f.processed%f.batchSize != 0 {
		return nil
	}

	f.logger.Info("batch complete, recycling browser session",
		"processed", f.processed,
		"batchSize", f.batchSize,
	)
	if err := f.renderer.Recycle(ctx); err != nil {
		return fmt.Errorf("batch recycle failed: %w", err)
	}
	return nil
}
