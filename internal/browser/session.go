package browser

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultUserAgent is sent with every page load. A desktop browser UA
// avoids the mobile/consent variants some sites serve to unknown agents.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// ErrSessionClosed is returned when Render is called after Close.
var ErrSessionClosed = errors.New("browser session closed")

// Session is an owned handle on one headless Chrome instance.
// It satisfies the crawler.Renderer contract: Render, Recycle, Close.
//
// Not safe for concurrent use; the pipeline drives it from a single worker.
type Session struct {
	// timeout bounds each page load, including the render wait.
	timeout time.Duration

	// renderWait is how long to sleep after navigation before reading
	// the DOM, giving page scripts a chance to run.
	renderWait time.Duration

	userAgent string
	logger    *slog.Logger

	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
	closed        bool
}

// Option configures a Session.
type Option func(*Session)

// WithTimeout sets the per-render timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) {
		s.timeout = d
	}
}

// WithRenderWait sets the post-navigation JavaScript wait.
func WithRenderWait(d time.Duration) Option {
	return func(s *Session) {
		s.renderWait = d
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(s *Session) {
		s.userAgent = ua
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates a Session and prepares the browser allocator.
// Chrome itself is launched lazily on the first Render; a missing Chrome
// binary therefore surfaces as a Render error, which the fetch controller
// retries and eventually reports.
func New(opts ...Option) *Session {
	s := &Session{
		timeout:    30 * time.Second,
		renderWait: 2 * time.Second,
		userAgent:  DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	s.start()
	return s
}

// start creates a fresh allocator and browser context.
func (s *Session) start() {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
		chromedp.Flag("disable-notifications", true),
		chromedp.UserAgent(s.userAgent),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	s.allocCancel = allocCancel
	s.browserCtx = browserCtx
	s.browserCancel = browserCancel
}

// Render navigates to the URL, waits for scripts, and returns the page
// source. The error covers navigation failures, timeouts, and a dead
// browser process uniformly.
func (s *Session) Render(ctx context.Context, url string) (string, error) {
	if s.closed {
		return "", ErrSessionClosed
	}

	// chromedp task contexts must derive from the browser context, so the
	// caller's context is honored by racing it against the task.
	taskCtx, cancel := context.WithTimeout(s.browserCtx, s.timeout)
	defer cancel()

	var markup string
	done := make(chan error, 1)
	go func() {
		done <- chromedp.Run(taskCtx,
			chromedp.Navigate(url),
			chromedp.Sleep(s.renderWait),
			chromedp.OuterHTML("html", &markup),
		)
	}()

	select {
	case <-ctx.Done():
		cancel()
		<-done
		return "", ctx.Err()
	case err := <-done:
		if err != nil {
			return "", err
		}
		return markup, nil
	}
}

// Recycle tears the browser down and creates a fresh session.
// Used between fetch retries and proactively every batch; Chrome is
// assumed to accumulate unrecoverable state after failures.
func (s *Session) Recycle(ctx context.Context) error {
	if s.closed {
		return ErrSessionClosed
	}

	s.logger.Debug("recycling browser session")
	s.teardown()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(2 * time.Second):
		// Give the old Chrome process time to release its resources.
	}

	s.start()
	return nil
}

// Close releases the browser session. Safe to call more than once; the
// pipeline defers it on every exit path.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.teardown()
	return nil
}

// teardown cancels the browser and allocator contexts, killing Chrome.
func (s *Session) teardown() {
	// Graceful browser shutdown first; fall back to context cancellation.
	if err := chromedp.Cancel(s.browserCtx); err != nil {
		s.logger.Debug("graceful browser shutdown failed", "error", err)
	}
	s.browserCancel()
	s.allocCancel()
}
