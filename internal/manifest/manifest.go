// Package manifest writes the discovery-phase audit artifact: the
// ordered list of URLs the crawl will generate documents for. The core
// never reads it back; it exists for downstream tooling and run audits.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the manifest file name inside the output directory.
const FileName = "discovery_manifest.json"

// Manifest records one discovery phase: the seed, when discovery
// finished, and the ordered normalized URLs.
type Manifest struct {
	StartURL  string    `json:"start_url"`
	Timestamp time.Time `json:"timestamp"`
	TotalURLs int       `json:"total_urls"` //nolint:tagliatelle // URLs is standard acronym
	URLs      []string  `json:"urls"`
}

// New builds a Manifest for the given seed and discovered URLs.
func New(startURL string, urls []string, now time.Time) *Manifest {
	return &Manifest{
		StartURL:  startURL,
		Timestamp: now,
		TotalURLs: len(urls),
		URLs:      urls,
	}
}

// Write stores the manifest in dir and returns the full file path.
// The directory is created if needed.
func (m *Manifest) Write(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create manifest directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return path, nil
}
