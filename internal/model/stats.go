package model

import "time"

// RunStatistics aggregates counters for one complete crawl run.
// It is created by the pipeline at run start and mutated only by the
// pipeline's single worker; all other packages receive it read-only.
//
// Design decision: We pass this struct explicitly through the pipeline
// rather than keeping a package-level counter because it makes the
// ownership obvious and keeps tests free of global state.
type RunStatistics struct {
	// URLsCrawled is the number of pages successfully fetched during discovery.
	URLsCrawled int `json:"urls_crawled"`

	// ArtifactsCreated is the number of PDF artifacts written during generation.
	ArtifactsCreated int `json:"artifacts_created"`

	// Errors counts page-level failures: exhausted fetch retries,
	// insufficient extracted content, and renderer failures.
	// Each failing URL is counted exactly once.
	Errors int `json:"errors"`

	// StartTime is when the run began.
	StartTime time.Time `json:"start_time"`

	// EndTime is when the run finished. Zero while the run is in progress.
	EndTime time.Time `json:"end_time"`
}

// Duration returns the elapsed wall-clock time of the run.
// If the run has not finished, it returns the time elapsed so far.
func (s *RunStatistics) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}
