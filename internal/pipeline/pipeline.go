package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/papercrawl/papercrawl/internal/config"
	"github.com/papercrawl/papercrawl/internal/crawler"
	"github.com/papercrawl/papercrawl/internal/document"
	"github.com/papercrawl/papercrawl/internal/keywords"
	"github.com/papercrawl/papercrawl/internal/manifest"
	"github.com/papercrawl/papercrawl/internal/model"
)

// Fetcher retrieves rendered markup for one URL at a time and tracks
// batch progress for proactive session recycling.
type Fetcher interface {
	// Fetch returns the rendered markup, retrying transient failures
	// internally. An error means the URL failed permanently.
	Fetch(ctx context.Context, url string) (string, error)

	// MarkProcessed records one successfully processed URL.
	MarkProcessed(ctx context.Context) error
}

// Extractor cleans rendered markup into prose lines.
type Extractor interface {
	Extract(markup string) []string
}

// KeywordExtractor derives representative terms from page text.
type KeywordExtractor interface {
	Extract(text string) []string
}

// DocumentRenderer writes assembled blocks as a file artifact.
type DocumentRenderer interface {
	Render(blocks []model.Block, filename string) (string, error)
	OutputDir() string
}

// Pipeline runs the two crawl phases and owns the run statistics.
// Strictly sequential; one URL in flight at a time because the
// underlying browser session cannot be shared.
type Pipeline struct {
	cfg       *config.Config
	fetcher   Fetcher
	extractor Extractor
	keywords  KeywordExtractor
	renderer  DocumentRenderer

	logger *slog.Logger
	now    func() time.Time

	stats model.RunStatistics
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, a default logger is created.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithClock overrides the time source, used by tests for deterministic
// timestamps in names and statistics.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// New creates a Pipeline over the given collaborators.
func New(cfg *config.Config, fetcher Fetcher, extractor Extractor, kw KeywordExtractor, renderer DocumentRenderer, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:       cfg,
		fetcher:   fetcher,
		extractor: extractor,
		keywords:  kw,
		renderer:  renderer,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// Discover runs the discovery phase: breadth-first enumeration of
// in-scope URLs up to the configured page bound, followed by the
// manifest write. Returns the ordered discovered URLs.
//
// Fetch failures during discovery count as page-level errors and the
// URL is dropped from the result; discovery itself only fails on
// context cancellation or a manifest write failure.
func (p *Pipeline) Discover(ctx context.Context) ([]string, error) {
	p.stats.StartTime = p.now()

	frontier := crawler.NewFrontier(p.cfg.MaxPages, p.cfg.IgnorePatterns)
	if err := frontier.Seed(p.cfg.SeedURL); err != nil {
		return nil, fmt.Errorf("failed to seed frontier: %w", err)
	}

	p.logger.Info("starting discovery",
		"seed", p.cfg.SeedURL,
		"max_pages", p.cfg.MaxPages,
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		url, ok := frontier.Next()
		if !ok {
			break
		}
		frontier.MarkVisited(url)

		markup, err := p.fetcher.Fetch(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			p.logger.Warn("discovery fetch failed", "url", url, "error", err)
			p.stats.Errors++
			p.wait(ctx)
			continue
		}

		frontier.RecordDiscovered(url)
		frontier.Offer(p.pageLinks(url, markup))

		p.logger.Debug("discovered page",
			"url", url,
			"total", len(frontier.Discovered()),
			"queued", frontier.QueueLen(),
		)
		p.wait(ctx)
	}

	discovered := frontier.Discovered()
	p.stats.URLsCrawled = len(discovered)

	p.logger.Info("discovery complete", "urls", len(discovered))

	if _, err := manifest.New(p.cfg.SeedURL, discovered, p.now()).Write(p.renderer.OutputDir()); err != nil {
		return nil, err
	}
	return discovered, nil
}

// Generate runs the generation phase over the discovered URLs: re-fetch,
// extract, name, assemble, render. Page-level failures are counted and
// skipped; the phase only stops early on context cancellation.
func (p *Pipeline) Generate(ctx context.Context, urls []string) error {
	defer func() {
		p.stats.EndTime = p.now()
	}()

	total := len(urls)
	p.logger.Info("starting generation",
		"urls", total,
		"batch_size", p.cfg.BatchSize,
	)

	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return err
		}
		sequence := i + 1

		markup, err := p.fetcher.Fetch(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.logger.Warn("generation fetch failed", "url", url, "error", err)
			p.stats.Errors++
			p.wait(ctx)
			continue
		}

		doc := model.ExtractedDocument{
			URL:      url,
			Lines:    p.extractor.Extract(markup),
			Sequence: sequence,
			Total:    total,
		}
		if doc.ContentLength() < model.MinContentLength {
			p.logger.Warn("insufficient content", "url", url)
			p.stats.Errors++
			p.wait(ctx)
			continue
		}

		if err := p.renderDocument(&doc); err != nil {
			p.logger.Error("document rendering failed", "url", url, "error", err)
			p.stats.Errors++
			p.wait(ctx)
			continue
		}
		p.stats.ArtifactsCreated++

		if err := p.fetcher.MarkProcessed(ctx); err != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		p.wait(ctx)
	}

	p.logger.Info("generation complete",
		"created", p.stats.ArtifactsCreated,
		"errors", p.stats.Errors,
	)
	return nil
}

// renderDocument derives keywords and a file name, assembles the block
// model, and hands it to the document renderer.
func (p *Pipeline) renderDocument(doc *model.ExtractedDocument) error {
	text := doc.Text()
	now := p.now()

	kws := p.keywords.Extract(text)
	name := keywords.ArtifactName(doc.URL, kws, doc.Sequence, now)
	blocks := document.Assemble(text, doc.URL, doc.Sequence, doc.Total, kws, now)

	path, err := p.renderer.Render(blocks, name)
	if err != nil {
		return err
	}

	p.logger.Info("created document", "path", path)
	return nil
}

// pageLinks parses markup fetched from url and returns the outgoing
// links. Parse problems yield no links rather than an error; a page
// that cannot be parsed simply contributes nothing to the frontier.
func (p *Pipeline) pageLinks(url, markup string) []string {
	parser, err := crawler.NewParser(url)
	if err != nil {
		return nil
	}
	result, err := parser.Parse(strings.NewReader(markup))
	if err != nil {
		return nil
	}
	return result.Links
}

// wait applies the politeness delay, returning early on cancellation.
func (p *Pipeline) wait(ctx context.Context) {
	if p.cfg.Delay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(p.cfg.Delay):
	}
}

// Finish stamps the end time if generation never ran, so summaries of
// cancelled runs still carry a duration.
func (p *Pipeline) Finish() {
	if p.stats.EndTime.IsZero() {
		p.stats.EndTime = p.now()
	}
}

// Stats returns a copy of the run statistics.
func (p *Pipeline) Stats() model.RunStatistics {
	return p.stats
}
