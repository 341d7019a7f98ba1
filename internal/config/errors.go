package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoSeedURL is returned when no seed URL is specified.
	// The crawl has nowhere to start without one.
	ErrNoSeedURL = errors.New("no seed URL specified: provide a website URL to crawl")

	// ErrInvalidMaxPages is returned when the page bound is not positive.
	// Zero pages would mean no crawling at all.
	ErrInvalidMaxPages = errors.New("invalid max pages: must be greater than 0")

	// ErrInvalidTimeout is returned when the fetch timeout is not positive.
	// A zero or negative timeout would cause immediate fetch failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxRetries is returned when the retry count is not positive.
	// At least one attempt per URL is required.
	ErrInvalidMaxRetries = errors.New("invalid max retries: must be positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	// The generation phase recycles the browser every batch; a zero batch
	// would recycle before every page.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrInvalidDelay is returned when a delay is negative.
	// Use 0 to disable throttling between requests.
	ErrInvalidDelay = errors.New("invalid delay: must be non-negative")

	// ErrInvalidKeywordCount is returned when the keyword count or the
	// maximum n-gram size is not positive.
	ErrInvalidKeywordCount = errors.New("invalid keyword settings: counts must be positive")
)
