package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/papercrawl/papercrawl/internal/config"
)

// TestNewCrawlCmd tests the crawl command creation.
func TestNewCrawlCmd(t *testing.T) {
	t.Parallel()

	cmd := NewCrawlCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "crawl [url]" {
			t.Errorf("expected use 'crawl [url]', got %q", cmd.Use)
		}
	})

	t.Run("has expected flags", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{
			"max-pages", "delay", "timeout", "retries", "retry-delay",
			"batch", "output", "yes", "config", "markdown", "json",
			"summary-file",
		} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("expected flag %q", name)
			}
		}
	})

	t.Run("max-pages default matches config", func(t *testing.T) {
		t.Parallel()

		flag := cmd.Flags().Lookup("max-pages")
		if flag == nil {
			t.Fatal("expected max-pages flag")
		}
		if flag.DefValue != "50" {
			t.Errorf("expected default '50', got %q", flag.DefValue)
		}
	})
}

// TestEnsureScheme tests https defaulting.
func TestEnsureScheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "https://example.com"},
		{"https://example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ensureScheme(tt.in); got != tt.want {
			t.Errorf("ensureScheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestConfirmGeneration tests the confirmation prompt answers.
func TestConfirmGeneration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "yes\n", true},
		{"y", "y\n", true},
		{"german ja", "ja\n", true},
		{"german j", "j\n", true},
		{"uppercase", "YES\n", true},
		{"padded", "  ja  \n", true},
		{"no", "no\n", false},
		{"empty", "\n", false},
		{"garbage", "maybe\n", false},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out strings.Builder
			got, err := confirmGeneration(strings.NewReader(tt.input), &out, 5)
			if err != nil {
				t.Fatalf("confirmGeneration() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("confirmGeneration(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "5 URLs found") {
				t.Errorf("prompt missing URL count: %q", out.String())
			}
		})
	}
}

// TestPromptSeedURL tests re-prompting until a valid URL is entered.
func TestPromptSeedURL(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid URL", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder
		got, err := promptSeedURL(strings.NewReader("https://example.com\n"), &out)
		if err != nil {
			t.Fatalf("promptSeedURL() error: %v", err)
		}
		if got != "https://example.com" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("defaults scheme to https", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder
		got, err := promptSeedURL(strings.NewReader("example.com\n"), &out)
		if err != nil {
			t.Fatalf("promptSeedURL() error: %v", err)
		}
		if got != "https://example.com" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("re-prompts on empty input", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder
		got, err := promptSeedURL(strings.NewReader("\nexample.com\n"), &out)
		if err != nil {
			t.Fatalf("promptSeedURL() error: %v", err)
		}
		if got != "https://example.com" {
			t.Errorf("got %q", got)
		}
		if !strings.Contains(out.String(), "URL cannot be empty.") {
			t.Error("missing empty-input message")
		}
	})

	t.Run("errors on EOF", func(t *testing.T) {
		t.Parallel()

		var out strings.Builder
		if _, err := promptSeedURL(strings.NewReader(""), &out); err == nil {
			t.Error("expected error on EOF")
		}
	})
}

// TestPromptMaxPages tests re-prompting until a positive number.
func TestPromptMaxPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"valid number", "20\n", 20},
		{"retries after garbage", "abc\n50\n", 50},
		{"retries after zero", "0\n7\n", 7},
		{"retries after negative", "-3\n7\n", 7},
		{"retries after empty", "\n12\n", 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out strings.Builder
			got, err := promptMaxPages(strings.NewReader(tt.input), &out)
			if err != nil {
				t.Fatalf("promptMaxPages() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("promptMaxPages(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

// TestBuildConfig tests flag and config file precedence.
func TestBuildConfig(t *testing.T) {
	t.Run("defaults without flags", func(t *testing.T) {
		cmd := NewCrawlCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, nil)
		if err != nil {
			t.Fatalf("buildConfig() error: %v", err)
		}
		if cfg.MaxPages != config.DefaultMaxPages {
			t.Errorf("MaxPages = %d, want default", cfg.MaxPages)
		}
		if cfg.Delay != config.DefaultDelay {
			t.Errorf("Delay = %v, want default", cfg.Delay)
		}
	})

	t.Run("seed from positional argument", func(t *testing.T) {
		cmd := NewCrawlCmd()
		if err := cmd.ParseFlags(nil); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("buildConfig() error: %v", err)
		}
		if cfg.SeedURL != "https://example.com" {
			t.Errorf("SeedURL = %q", cfg.SeedURL)
		}
	})

	t.Run("flags override config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, ".papercrawl")
		content := "max_pages: 10\ndelay: 500ms\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		cmd := NewCrawlCmd()
		if err := cmd.ParseFlags([]string{"-c", path, "--max-pages", "99"}); err != nil {
			t.Fatal(err)
		}

		cfg, err := buildConfig(cmd, nil)
		if err != nil {
			t.Fatalf("buildConfig() error: %v", err)
		}
		if cfg.MaxPages != 99 {
			t.Errorf("MaxPages = %d, want flag value 99", cfg.MaxPages)
		}
		if cfg.Delay != 500*time.Millisecond {
			t.Errorf("Delay = %v, want file value 500ms", cfg.Delay)
		}
	})

	t.Run("explicit missing config file fails", func(t *testing.T) {
		cmd := NewCrawlCmd()
		if err := cmd.ParseFlags([]string{"-c", "/nonexistent/config.yaml"}); err != nil {
			t.Fatal(err)
		}

		if _, err := buildConfig(cmd, nil); err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})

	t.Run("markdown and json are exclusive", func(t *testing.T) {
		cmd := NewCrawlCmd()
		if err := cmd.ParseFlags([]string{"--markdown", "--json"}); err != nil {
			t.Fatal(err)
		}

		if _, err := buildConfig(cmd, nil); err == nil {
			t.Error("expected error for conflicting summary formats")
		}
	})
}
