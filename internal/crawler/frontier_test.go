package crawler

import (
	"errors"
	"fmt"
	"testing"
)

// TestFrontierSeed tests seeding semantics.
func TestFrontierSeed(t *testing.T) {
	t.Parallel()

	t.Run("seed enqueues normalized URL", func(t *testing.T) {
		t.Parallel()

		f := NewFrontier(10, nil)
		if f.State() != StateIdle {
			t.Errorf("state = %v, want StateIdle", f.State())
		}

		if err := f.Seed("http://example.com"); err != nil {
			t.Fatalf("Seed() error: %v", err)
		}
		if f.State() != StateDiscovering {
			t.Errorf("state = %v, want StateDiscovering", f.State())
		}

		url, ok := f.Next()
		if !ok {
			t.Fatal("expected a URL from the queue")
		}
		if url != "https://example.com/" {
			t.Errorf("Next() = %q, want normalized seed", url)
		}
	})

	t.Run("double seed fails", func(t *testing.T) {
		t.Parallel()

		f := NewFrontier(10, nil)
		if err := f.Seed("https://example.com"); err != nil {
			t.Fatal(err)
		}
		if err := f.Seed("https://example.com"); !errors.Is(err, ErrAlreadySeeded) {
			t.Errorf("expected ErrAlreadySeeded, got %v", err)
		}
	})

	t.Run("hostless seed fails", func(t *testing.T) {
		t.Parallel()

		f := NewFrontier(10, nil)
		if err := f.Seed("https://exa mple.com"); !errors.Is(err, ErrBadSeed) {
			t.Errorf("expected ErrBadSeed, got %v", err)
		}
	})
}

// TestFrontierDeduplication tests that visited and pending URLs are never
// enqueued twice.
func TestFrontierDeduplication(t *testing.T) {
	t.Parallel()

	f := NewFrontier(10, nil)
	if err := f.Seed("https://example.com"); err != nil {
		t.Fatal(err)
	}

	seed, _ := f.Next()
	f.MarkVisited(seed)
	f.RecordDiscovered(seed)

	// The seed is visited; query variants of a pending URL dedupe too.
	f.Offer([]string{
		"https://example.com",             // visited
		"https://example.com/a",           // new
		"https://example.com/a?utm=x",     // duplicate of pending /a
		"https://example.com/a/",          // duplicate of pending /a
		"https://example.com/b#fragment",  // new
		"https://example.com/b?lang=de",   // duplicate of pending /b
	})

	if got := f.QueueLen(); got != 2 {
		t.Errorf("queue length = %d, want 2", got)
	}
}

// TestFrontierScopeAndIgnore tests domain scoping and ignore patterns.
func TestFrontierScopeAndIgnore(t *testing.T) {
	t.Parallel()

	f := NewFrontier(10, []string{"login", "page="})
	if err := f.Seed("https://example.com"); err != nil {
		t.Fatal(err)
	}

	f.Offer([]string{
		"https://other.org/",                   // off-domain
		"https://example.com/user/LOGIN",       // ignore pattern, case-insensitive
		"https://sub.example.com/team",         // subdomain contains seed host: in scope
		"https://example.com/articles?page=3",  // ignore pattern in query
		"https://example.com/kontakt",          // in scope
	})

	want := map[string]bool{
		"https://sub.example.com/team": true,
		"https://example.com/kontakt":  true,
	}

	// Drain everything after the seed.
	seed, _ := f.Next()
	f.MarkVisited(seed)
	f.RecordDiscovered(seed)

	got := make(map[string]bool)
	for {
		u, ok := f.Next()
		if !ok {
			break
		}
		got[u] = true
		f.MarkVisited(u)
		f.RecordDiscovered(u)
	}

	if len(got) != len(want) {
		t.Fatalf("dequeued %v, want %v", got, want)
	}
	for u := range want {
		if !got[u] {
			t.Errorf("missing %s", u)
		}
	}
}

// TestFrontierCapacity tests that discovered+queue never exceeds the bound
// and that excess candidates are dropped silently.
func TestFrontierCapacity(t *testing.T) {
	t.Parallel()

	const maxPages = 3

	f := NewFrontier(maxPages, nil)
	if err := f.Seed("https://example.com"); err != nil {
		t.Fatal(err)
	}

	seed, _ := f.Next()
	f.MarkVisited(seed)
	f.RecordDiscovered(seed)

	var offers []string
	for i := 0; i < 20; i++ {
		offers = append(offers, fmt.Sprintf("https://example.com/p%d", i))
	}
	f.Offer(offers)

	if got := len(f.Discovered()) + f.QueueLen(); got > maxPages {
		t.Errorf("discovered+queued = %d, exceeds bound %d", got, maxPages)
	}

	for {
		u, ok := f.Next()
		if !ok {
			break
		}
		f.MarkVisited(u)
		f.RecordDiscovered(u)
		f.Offer([]string{fmt.Sprintf("%s/child", u)})
	}

	if got := len(f.Discovered()); got > maxPages {
		t.Errorf("discovered = %d, exceeds bound %d", got, maxPages)
	}
	if f.State() != StateExhausted {
		t.Errorf("state = %v, want StateExhausted", f.State())
	}
}

// TestFrontierBreadthFirstOrder tests that children are generated after
// all their parents' siblings (FIFO discovery order).
func TestFrontierBreadthFirstOrder(t *testing.T) {
	t.Parallel()

	f := NewFrontier(10, nil)
	if err := f.Seed("https://example.com"); err != nil {
		t.Fatal(err)
	}

	// Level 0: seed. Level 1: /a, /b. Level 2: /a/x (offered while
	// visiting /a).
	seed, _ := f.Next()
	f.MarkVisited(seed)
	f.RecordDiscovered(seed)
	f.Offer([]string{"https://example.com/a", "https://example.com/b"})

	next, _ := f.Next()
	if next != "https://example.com/a" {
		t.Fatalf("expected /a first, got %s", next)
	}
	f.MarkVisited(next)
	f.RecordDiscovered(next)
	f.Offer([]string{"https://example.com/a/x"})

	next, _ = f.Next()
	if next != "https://example.com/b" {
		t.Errorf("expected /b before /a/x, got %s", next)
	}
	f.MarkVisited(next)
	f.RecordDiscovered(next)

	next, _ = f.Next()
	if next != "https://example.com/a/x" {
		t.Errorf("expected /a/x last, got %s", next)
	}
	f.MarkVisited(next)
	f.RecordDiscovered(next)

	wantOrder := []string{
		"https://example.com/",
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/a/x",
	}
	got := f.Discovered()
	if len(got) != len(wantOrder) {
		t.Fatalf("discovered = %v, want %v", got, wantOrder)
	}
	for i, u := range wantOrder {
		if got[i] != u {
			t.Errorf("discovered[%d] = %s, want %s", i, got[i], u)
		}
	}
}

// TestFrontierRecordDiscoveredOnce tests the at-most-once invariant.
func TestFrontierRecordDiscoveredOnce(t *testing.T) {
	t.Parallel()

	f := NewFrontier(10, nil)
	if err := f.Seed("https://example.com"); err != nil {
		t.Fatal(err)
	}

	f.RecordDiscovered("https://example.com/")
	f.RecordDiscovered("https://example.com/")

	if got := len(f.Discovered()); got != 1 {
		t.Errorf("discovered length = %d, want 1", got)
	}
}
