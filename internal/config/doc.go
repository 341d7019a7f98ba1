// Package config provides configuration structures and utilities for papercrawl.
// It defines the crawl settings (seed URL, page bound, retry policy, batch
// size), content-extraction knobs, and output preferences, resolved once
// from defaults, an optional YAML file, and CLI flags.
package config
