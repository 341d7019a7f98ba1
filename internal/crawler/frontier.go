package crawler

import (
	"errors"
	"strings"
)

// State describes the lifecycle of a Frontier.
type State int

// Frontier states. The only transitions are Idle -> Discovering (on Seed)
// and Discovering -> Exhausted (when the queue empties or the page bound
// is reached).
const (
	// StateIdle is the state before Seed has been called.
	StateIdle State = iota

	// StateDiscovering is the state while URLs remain to be visited.
	StateDiscovering

	// StateExhausted is the terminal state: nothing left to fetch.
	StateExhausted
)

// ErrAlreadySeeded is returned when Seed is called more than once.
var ErrAlreadySeeded = errors.New("frontier already seeded")

// ErrBadSeed is returned when the seed URL has no usable host.
var ErrBadSeed = errors.New("seed URL has no host")

// Frontier is the breadth-first crawl frontier: a FIFO queue of URLs to
// visit plus bookkeeping of already-visited ones. It enforces domain
// scoping, ignore-pattern exclusion, and the total page bound.
//
// The Frontier never fails during discovery; candidates that would exceed
// capacity are silently dropped at insertion time, which bounds total work
// deterministically regardless of link fan-out.
//
// All methods assume a single caller; the frontier is owned exclusively by
// the pipeline's one worker and needs no locking.
type Frontier struct {
	// maxPages bounds len(discovered) + len(queue) at insertion time.
	maxPages int

	// ignorePatterns are substrings matched case-insensitively against
	// the full candidate URL.
	ignorePatterns []string

	// seedHost is the network location of the seed URL. Candidates whose
	// host does not contain it are out of scope.
	seedHost string

	state State

	visited    map[string]bool
	queued     map[string]bool
	queue      []string
	discovered []string
	seen       map[string]bool // guards discovered against duplicates
}

// NewFrontier creates a Frontier bounded to maxPages discovered pages.
func NewFrontier(maxPages int, ignorePatterns []string) *Frontier {
	lowered := make([]string, len(ignorePatterns))
	for i, p := range ignorePatterns {
		lowered[i] = strings.ToLower(p)
	}

	return &Frontier{
		maxPages:       maxPages,
		ignorePatterns: lowered,
		state:          StateIdle,
		visited:        make(map[string]bool),
		queued:         make(map[string]bool),
		seen:           make(map[string]bool),
	}
}

// Seed normalizes and enqueues the start URL and moves the frontier into
// the Discovering state. It must be called exactly once before discovery
// begins.
func (f *Frontier) Seed(rawURL string) error {
	if f.state != StateIdle {
		return ErrAlreadySeeded
	}

	normalized := Normalize(rawURL)
	host := Host(normalized)
	if host == "" {
		return ErrBadSeed
	}

	f.seedHost = host
	f.queue = append(f.queue, normalized)
	f.queued[normalized] = true
	f.state = StateDiscovering
	return nil
}

// Next pops the head of the queue, preserving breadth-first order.
// It returns ok=false once the frontier is exhausted, either because the
// queue is empty or because the page bound has been reached.
//
// Next does not touch the visited set; callers mark a URL visited
// themselves so that bookkeeping stays tied to the fetch outcome.
func (f *Frontier) Next() (string, bool) {
	if f.state != StateDiscovering {
		return "", false
	}

	if len(f.queue) == 0 || len(f.discovered) >= f.maxPages {
		f.state = StateExhausted
		return "", false
	}

	head := f.queue[0]
	f.queue = f.queue[1:]
	delete(f.queued, head)
	return head, true
}

// MarkVisited records that a URL has been popped and handed to the fetcher.
// Visited URLs are never enqueued again, regardless of fetch outcome.
func (f *Frontier) MarkVisited(normalizedURL string) {
	f.visited[normalizedURL] = true
}

// RecordDiscovered appends a successfully fetched URL to the discovery
// result. A URL enters the result at most once, and never beyond the
// page bound.
func (f *Frontier) RecordDiscovered(normalizedURL string) {
	if f.seen[normalizedURL] || len(f.discovered) >= f.maxPages {
		return
	}
	f.seen[normalizedURL] = true
	f.discovered = append(f.discovered, normalizedURL)
}

// Offer presents candidate URLs for future visits. Each candidate is
// normalized, then skipped if already visited or pending, if it matches an
// ignore pattern, or if it is off-domain. Remaining candidates are
// enqueued only while capacity allows; the rest are dropped silently.
func (f *Frontier) Offer(candidates []string) {
	if f.state != StateDiscovering {
		return
	}

	for _, candidate := range candidates {
		normalized := Normalize(candidate)

		if f.visited[normalized] || f.queued[normalized] {
			continue
		}
		if f.shouldIgnore(normalized) {
			continue
		}
		if !f.inScope(normalized) {
			continue
		}
		if len(f.discovered)+len(f.queue) >= f.maxPages {
			return
		}

		f.queue = append(f.queue, normalized)
		f.queued[normalized] = true
	}
}

// Discovered returns the ordered list of discovered URLs. The order is
// the breadth-first fetch order and becomes the artifact sequence.
func (f *Frontier) Discovered() []string {
	return f.discovered
}

// State returns the current frontier state.
func (f *Frontier) State() State {
	return f.state
}

// QueueLen returns the number of pending URLs. Used for logging.
func (f *Frontier) QueueLen() int {
	return len(f.queue)
}

// shouldIgnore reports whether the URL matches any ignore pattern.
// Matching is a case-insensitive substring test against the full URL.
func (f *Frontier) shouldIgnore(normalizedURL string) bool {
	lowered := strings.ToLower(normalizedURL)
	for _, pattern := range f.ignorePatterns {
		if strings.Contains(lowered, pattern) {
			return true
		}
	}
	return false
}

// inScope reports whether the candidate host belongs to the crawled site.
//
// Scoping is substring containment of the seed host in the candidate host,
// not exact same-origin equality. This is deliberately loose: it admits
// "www."-prefixed and subdomain variants of the seed without a public
// suffix list. Documented as policy, not a bug.
func (f *Frontier) inScope(normalizedURL string) bool {
	host := Host(normalizedURL)
	if host == "" {
		return false
	}
	return strings.Contains(host, f.seedHost)
}
