package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These mirror the behavior the tool was tuned with: a polite two-second
// request delay, a generous page-load timeout for JavaScript-heavy sites,
// and a browser restart every 25 pages to keep memory flat.
const (
	// DefaultMaxPages bounds the total number of pages discovered per run.
	// This prevents runaway crawling on large or infinitely-generating sites.
	DefaultMaxPages = 50

	// DefaultDelay is the politeness delay applied after every fetch,
	// during discovery and generation alike. It is a throttle, not a
	// correctness mechanism.
	DefaultDelay = 2 * time.Second

	// DefaultTimeout is the per-fetch page-load timeout. Rendering sites
	// with heavy JavaScript can easily take 10+ seconds, so this is
	// deliberately generous.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxRetries is the number of fetch attempts per URL before the
	// URL is recorded as a page-level error.
	DefaultMaxRetries = 3

	// DefaultRetryDelay is the wait between fetch attempts. The browser
	// session is recycled during this window.
	DefaultRetryDelay = 5 * time.Second

	// DefaultBatchSize is the number of successfully processed URLs between
	// proactive browser restarts during the generation phase. Headless
	// Chrome accumulates memory over long runs; periodic recycling keeps
	// usage bounded.
	DefaultBatchSize = 25

	// DefaultNumKeywords is the number of keywords derived per artifact name.
	DefaultNumKeywords = 3

	// DefaultMaxNgram is the maximum phrase length considered by the
	// keyword extractor. 2 keeps names short while still allowing
	// two-word terms like "yoga kurse".
	DefaultMaxNgram = 2

	// DefaultRenderWait is how long the browser waits after navigation
	// before reading the DOM, to give JavaScript a chance to run.
	// There is no correctness guarantee beyond "wait and re-read".
	DefaultRenderWait = 2 * time.Second

	// AppName is the application name used for XDG directory paths and
	// the configuration file name.
	AppName = "papercrawl"
)

// DefaultIgnorePatterns lists URL substrings excluded from the frontier.
// Matching is case-insensitive against the full URL. These exclude
// account/session pages, machine endpoints, and faceted-navigation
// parameter variants that would otherwise explode the crawl.
func DefaultIgnorePatterns() []string {
	return []string{
		"login", "logout", "register", "newsletter", "redirect",
		"wp-json", "feed", "trackback", "xmlrpc", "search",
		"page=", "paged=", "sort=", "filter=", "cart", "checkout",
	}
}

// Config holds all configuration options for one papercrawl run.
// It is populated from defaults, an optional YAML config file, and CLI
// flags, validated once, and then treated as immutable for the lifetime
// of the run.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., CrawlConfig, OutputConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// SeedURL is the URL the crawl starts from. The scheme is forced to
	// https when missing or insecure.
	SeedURL string

	// MaxPages is the maximum number of pages to discover and generate.
	// Must be positive.
	MaxPages int

	// OutputDir is the directory PDF artifacts, the discovery manifest,
	// and the run summary are written to. Created if it does not exist.
	OutputDir string

	// Delay is the inter-request politeness delay applied after every fetch.
	Delay time.Duration

	// Timeout is the per-fetch page-load timeout.
	Timeout time.Duration

	// MaxRetries is the number of fetch attempts per URL.
	MaxRetries int

	// RetryDelay is the wait between fetch attempts.
	RetryDelay time.Duration

	// BatchSize is the number of processed URLs between proactive browser
	// restarts in the generation phase.
	BatchSize int

	// IgnorePatterns are URL substrings (matched case-insensitively)
	// that exclude a candidate from the frontier.
	IgnorePatterns []string

	// NumKeywords is the number of keywords used in artifact names.
	NumKeywords int

	// MaxNgram is the maximum keyword phrase length in words.
	MaxNgram int

	// RenderWait is how long the browser waits after navigation before
	// reading the page source.
	RenderWait time.Duration

	// Verbose enables debug-level log output.
	Verbose bool

	// AssumeYes skips the interactive confirmation between the discovery
	// and generation phases.
	AssumeYes bool

	// MarkdownSummary emits the final run summary as Markdown instead of
	// plain text.
	MarkdownSummary bool

	// JSONSummary emits the final run summary as JSON instead of plain
	// text. Mutually exclusive with MarkdownSummary.
	JSONSummary bool

	// SummaryFile is an optional file path for the run summary.
	// When empty, the summary is written to stdout.
	SummaryFile string

	// ConfigFilePath is the path to the configuration file. If empty, the
	// tool searches for .papercrawl in the current directory and then in
	// the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most sites.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because most defaults are non-zero (delays, bounds, patterns).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		MaxPages:       DefaultMaxPages,
		OutputDir:      DefaultOutputDir(),
		Delay:          DefaultDelay,
		Timeout:        DefaultTimeout,
		MaxRetries:     DefaultMaxRetries,
		RetryDelay:     DefaultRetryDelay,
		BatchSize:      DefaultBatchSize,
		IgnorePatterns: DefaultIgnorePatterns(),
		NumKeywords:    DefaultNumKeywords,
		MaxNgram:       DefaultMaxNgram,
		RenderWait:     DefaultRenderWait,
	}
}

// DefaultOutputDir returns the default artifact output directory.
// Artifacts land on the user's desktop when the system defines one,
// because the generated PDFs are the user-facing product of a run.
func DefaultOutputDir() string {
	if xdg.UserDirs.Desktop != "" {
		return filepath.Join(xdg.UserDirs.Desktop, "WebScraperPDFs")
	}
	return filepath.Join(xdg.DataHome, AppName, "pdfs")
}

// XDGDataDir returns the XDG data directory for papercrawl.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/papercrawl
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing and interactive prompting,
// before any crawling begins. We return the first error found because
// fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.SeedURL == "" {
		return ErrNoSeedURL
	}

	if c.MaxPages <= 0 {
		return ErrInvalidMaxPages
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.MaxRetries <= 0 {
		return ErrInvalidMaxRetries
	}

	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// Zero delay is allowed (no throttling); negative is not.
	if c.Delay < 0 || c.RetryDelay < 0 {
		return ErrInvalidDelay
	}

	if c.NumKeywords <= 0 || c.MaxNgram <= 0 {
		return ErrInvalidKeywordCount
	}

	return nil
}
