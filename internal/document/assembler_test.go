package document

import (
	"strings"
	"testing"
	"time"

	"github.com/papercrawl/papercrawl/internal/model"
)

var testTime = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

// TestAssembleLayout tests the fixed header and footer structure.
func TestAssembleLayout(t *testing.T) {
	t.Parallel()

	blocks := Assemble("Eine Zeile.", "https://example.com/kurse", 2, 5,
		[]string{"yoga", "kurse"}, testTime)

	if blocks[0].Kind != model.BlockTitle {
		t.Errorf("first block kind = %v, want title", blocks[0].Kind)
	}
	if blocks[0].Text != "papercrawl - Seite 2/5" {
		t.Errorf("title = %q", blocks[0].Text)
	}

	wantMeta := []string{
		"URL: https://example.com/kurse",
		"Erstellt: 2026-03-14 15:09:26",
		"Schlüsselwörter: yoga, kurse",
	}
	for i, want := range wantMeta {
		got := blocks[1+i]
		if got.Kind != model.BlockMeta || got.Text != want {
			t.Errorf("meta[%d] = %v %q, want %q", i, got.Kind, got.Text, want)
		}
	}

	last := blocks[len(blocks)-1]
	if last.Kind != model.BlockFooter {
		t.Errorf("last block kind = %v, want footer", last.Kind)
	}
	if !strings.Contains(last.Text, "Seite 2 von 5") {
		t.Errorf("footer = %q, want pagination", last.Text)
	}
}

// TestAssembleEmptyText tests the placeholder for pages without content.
func TestAssembleEmptyText(t *testing.T) {
	t.Parallel()

	blocks := Assemble("", "https://example.com", 1, 1, []string{"content"}, testTime)

	found := false
	for _, b := range blocks {
		if b.Kind == model.BlockBody {
			if b.Text != "Kein Textinhalt verfügbar" {
				t.Errorf("body text = %q, want placeholder", b.Text)
			}
			found = true
		}
	}
	if !found {
		t.Error("no body block for empty text")
	}
}

// TestContentBlockClassification tests line classification rules.
func TestContentBlockClassification(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"ÜBER UNS",
		"Wir unterrichten seit 2010.",
		"",
		"normale zeile",
	}, "\n")

	blocks := contentBlocks(text)

	want := []model.BlockKind{
		model.BlockHeading,
		model.BlockBody,
		model.BlockSpacer,
		model.BlockBody,
	}
	if len(blocks) != len(want) {
		t.Fatalf("got %d blocks, want %d: %v", len(blocks), len(want), blocks)
	}
	for i, kind := range want {
		if blocks[i].Kind != kind {
			t.Errorf("block[%d] kind = %v, want %v", i, blocks[i].Kind, kind)
		}
	}
}

// TestIsHeading tests the short-and-uppercase heuristic.
func TestIsHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{"ÜBER UNS", true},
		{"PREISE 2026", true},
		{"Über uns", false},
		{"1234 567", false}, // no cased characters
		{strings.Repeat("A", 100), false},
		{strings.Repeat("A", 99), true},
	}

	for _, tt := range tests {
		if got := isHeading(tt.line); got != tt.want {
			t.Errorf("isHeading(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

// TestLongLineSplitsIntoSentences tests the overlong paragraph split.
func TestLongLineSplitsIntoSentences(t *testing.T) {
	t.Parallel()

	sentence := strings.Repeat("wort ", 40) + "ende."
	long := strings.TrimSpace(strings.Repeat(sentence+" ", 4))
	if len(long) <= maxParagraphLength {
		t.Fatalf("test input too short: %d", len(long))
	}

	blocks := contentBlocks(long)

	if len(blocks) != 4 {
		t.Fatalf("got %d blocks, want 4 sentences: %v", len(blocks), blocks)
	}
	for _, b := range blocks {
		if b.Kind != model.BlockBody {
			t.Errorf("block kind = %v, want body", b.Kind)
		}
		if strings.TrimSpace(b.Text) == "" {
			t.Error("empty sentence block")
		}
	}
}

// TestSplitSentences tests boundary handling of the sentence splitter.
func TestSplitSentences(t *testing.T) {
	t.Parallel()

	got := splitSentences("Erster Satz. Zweiter Satz! Dritter Satz? Rest ohne Punkt")
	want := []string{"Erster Satz.", "Zweiter Satz!", "Dritter Satz?", "Rest ohne Punkt"}

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Dotted abbreviations without following space stay together.
	got = splitSentences("Preis 10.50 Euro ist fair.")
	if len(got) != 1 {
		t.Errorf("decimal point split the sentence: %v", got)
	}
}
