package extractor

import (
	"strings"
	"testing"
)

// TestExtractRemovesStructuralNodes tests that non-prose markup is
// dropped entirely.
func TestExtractRemovesStructuralNodes(t *testing.T) {
	t.Parallel()

	html := `<html><head>
		<title>Studio</title>
		<script>var x = 1;</script>
		<style>body { color: red }</style>
	</head><body>
		<nav>Home Kurse Preise</nav>
		<header>Willkommen Banner</header>
		<p>Unser Studio bietet Kurse an.</p>
		<table><tr><td>Mo</td><td>09:00</td></tr></table>
		<iframe src="https://maps.example.com"></iframe>
		<footer>Impressum</footer>
	</body></html>`

	lines := NewExtractor().Extract(html)

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "Unser Studio bietet Kurse an.") {
		t.Errorf("prose line missing from %v", lines)
	}
	for _, noise := range []string{"var x", "color: red", "Home Kurse", "Banner", "09:00", "Impressum"} {
		if strings.Contains(joined, noise) {
			t.Errorf("noise %q survived extraction: %v", noise, lines)
		}
	}
}

// TestExtractRemovesNoiseContainers tests class/id based container removal.
func TestExtractRemovesNoiseContainers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		html   string
		banned string
	}{
		{
			name:   "class with schedule word",
			html:   `<body><div class="course-schedule">Mo 9 Uhr</div><p>Prose.</p></body>`,
			banned: "Mo 9 Uhr",
		},
		{
			name:   "id with german word",
			html:   `<body><section id="kursplan-2024">Plan</section><p>Prose.</p></body>`,
			banned: "Plan",
		},
		{
			name:   "mixed case class",
			html:   `<body><div class="BookingWidget">Jetzt buchen</div><p>Prose.</p></body>`,
			banned: "Jetzt buchen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lines := NewExtractor().Extract(tt.html)
			joined := strings.Join(lines, "\n")
			if strings.Contains(joined, tt.banned) {
				t.Errorf("banned content %q survived: %v", tt.banned, lines)
			}
			if !strings.Contains(joined, "Prose.") {
				t.Errorf("prose missing: %v", lines)
			}
		})
	}
}

// TestLineFilters tests the fixed density heuristics at their boundaries.
func TestLineFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		keep bool
	}{
		{"plain prose", "Yoga für Anfänger und Fortgeschrittene.", true},
		{"five colons kept", "a: b: c: d: e: f", true},
		{"six colons dropped", "a: b: c: d: e: f: g", false},
		{"five dates kept", "1.1 2.2 3.3 4.4 5.5", true},
		{"six dates dropped", "1.1 2.2 3.3 4.4 5.5 6.6", false},
		{"three weekdays kept", "Kurse am Montag Dienstag Mittwoch", true},
		{"four weekdays dropped", "Montag Dienstag Mittwoch Donnerstag", false},
		{"english weekdays dropped", "mon tue wed thu open late", false},
		{"weekday needs whole word", "Monday Tuesdays Wednesdayish Thursdayed", true},
		{"empty dropped", "", false},
		{"whitespace only dropped", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			line := strings.TrimSpace(tt.line)
			if got := keepLine(line); got != tt.keep {
				t.Errorf("keepLine(%q) = %v, want %v", tt.line, got, tt.keep)
			}
		})
	}
}

// TestExtractIdempotent tests that re-extracting cleaned text is a no-op.
func TestExtractIdempotent(t *testing.T) {
	t.Parallel()

	html := `<body>
		<h1>ÜBER UNS</h1>
		<p>Wir unterrichten seit 2010.</p>
		<p>Unsere Kurse finden täglich statt.</p>
	</body>`

	first := NewExtractor().Extract(html)
	second := NewExtractor().Extract(strings.Join(first, "\n"))

	if len(first) != len(second) {
		t.Fatalf("second pass changed line count: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("line %d changed: %q vs %q", i, first[i], second[i])
		}
	}
}

// TestExtractEmptyInput tests degradation to no content.
func TestExtractEmptyInput(t *testing.T) {
	t.Parallel()

	if lines := NewExtractor().Extract(""); len(lines) != 0 {
		t.Errorf("expected no lines from empty markup, got %v", lines)
	}
	if lines := NewExtractor().Extract("<table><tr><td>only tables</td></tr></table>"); len(lines) != 0 {
		t.Errorf("expected no lines from table-only markup, got %v", lines)
	}
}
