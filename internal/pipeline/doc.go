// Package pipeline orchestrates a complete crawl run in two phases.
//
// Discovery drives the frontier breadth-first over the target site and
// persists the ordered URL list as the discovery manifest. Generation
// re-fetches each discovered URL, extracts its text, and renders one PDF
// artifact per page. Content is deliberately not cached between phases;
// re-fetching keeps memory flat on large sites.
//
// The pipeline owns all mutable run state. Statistics counters and the
// frontier are mutated only by the single orchestrating goroutine, so no
// locking is needed. Page-level failures increment the error counter and
// advance to the next URL; they never abort the run. Only configuration
// and resource-initialization failures are fatal, and those surface
// before the first fetch.
package pipeline
