package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for papercrawl.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "papercrawl",
		Short: "Crawl a website and convert its pages to PDF documents",
		Long: `papercrawl crawls a single website starting from a seed URL, extracts the
cleaned textual content of every page, and writes one PDF document per page
with a keyword-derived file name.

A run has two phases: discovery enumerates reachable pages breadth-first and
records them in a manifest, then, after confirmation, generation re-fetches
each page and renders its document. Pages are fetched through a headless
Chrome session so JavaScript-built content is captured.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewCrawlCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
