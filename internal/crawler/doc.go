// Package crawler provides the crawl-frontier state machine and fetch
// policy for papercrawl.
//
// # Architecture
//
// The package is built around three collaborating pieces:
//
//   - Frontier: the BFS queue plus visited-set bookkeeping that decides
//     what to fetch next, enforces domain scope and ignore-pattern
//     exclusion, and bounds the total number of discovered pages
//   - Fetcher: wraps the page-rendering session with timeout, retry and
//     session-recycling policy; the only component that may fail a URL
//     permanently
//   - Parser: extracts and resolves anchor links from raw markup
//
// Design decision: We implement our own frontier rather than using a
// crawling framework because:
//  1. The rendering session is a shared, stateful browser that must be
//     driven strictly sequentially
//  2. The capacity bound (drop at insertion once max pages is reached)
//     and visited/queued dedup are exact invariants of the tool
//  3. Framework queues are concurrent and callback-driven, the wrong
//     shape for a deterministic single-worker state machine
//
// # Politeness
//
// The orchestrator applies a fixed delay after every fetch, discovery and
// generation alike. It is a throttle only; correctness never depends on it.
package crawler
