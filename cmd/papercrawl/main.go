// Package main provides the entry point for the papercrawl CLI.
//
// papercrawl crawls a single website breadth-first, extracts the prose
// content of every discovered page, and writes one PDF document per
// page with a keyword-derived file name.
//
// Usage:
//
//	papercrawl crawl https://example.com
//	papercrawl crawl --max-pages 20 --yes https://example.com
//
// See --help for all available options.
package main

// main is the entry point for papercrawl.
func main() {
	Execute()
}
