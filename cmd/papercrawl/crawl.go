package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papercrawl/papercrawl/internal/browser"
	"github.com/papercrawl/papercrawl/internal/config"
	"github.com/papercrawl/papercrawl/internal/crawler"
	"github.com/papercrawl/papercrawl/internal/document"
	"github.com/papercrawl/papercrawl/internal/extractor"
	"github.com/papercrawl/papercrawl/internal/keywords"
	"github.com/papercrawl/papercrawl/internal/log"
	"github.com/papercrawl/papercrawl/internal/pipeline"
	"github.com/papercrawl/papercrawl/internal/report"
)

// NewCrawlCmd creates the crawl command.
func NewCrawlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl [url]",
		Short: "Crawl a website and generate one PDF per page",
		Long: `Crawl discovers the pages of a single website breadth-first, starting from
the seed URL, then converts each discovered page into a PDF document.

After discovery the tool prints the number of URLs found and asks for
confirmation before generating documents; answering anything but yes
stops the run cleanly after discovery. Use --yes to skip the question.

When the seed URL or --max-pages is missing, the tool asks for it
interactively.

Examples:
  # Crawl a site with interactive prompts
  papercrawl crawl

  # Crawl up to 20 pages without confirmation
  papercrawl crawl --max-pages 20 --yes https://example.com

  # Write PDFs into a specific directory
  papercrawl crawl -o ./pdfs https://example.com

  # Markdown run summary written to a file
  papercrawl crawl --markdown --summary-file report.md https://example.com`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCrawlCmd,
	}

	// Crawl behavior flags
	cmd.Flags().IntP("max-pages", "p", config.DefaultMaxPages,
		"Maximum number of pages to discover and convert")
	cmd.Flags().Duration("delay", config.DefaultDelay,
		"Politeness delay applied after every fetch")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Page-load timeout for each fetch")
	cmd.Flags().Int("retries", config.DefaultMaxRetries,
		"Fetch attempts per URL before it is counted as an error")
	cmd.Flags().Duration("retry-delay", config.DefaultRetryDelay,
		"Wait between fetch attempts")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Pages processed between browser restarts during generation")

	// Output flags
	cmd.Flags().StringP("output", "o", "",
		"Directory for PDF artifacts (default: desktop folder)")
	cmd.Flags().BoolP("yes", "y", false,
		"Skip the confirmation question between discovery and generation")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .papercrawl in current or home directory)")

	// Summary flags
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown run summary (mutually exclusive with --json)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON run summary (mutually exclusive with --markdown)")
	cmd.Flags().String("summary-file", "",
		"Write the run summary to the specified file path")

	return cmd
}

// runCrawlCmd executes the crawl command.
func runCrawlCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Missing seed or page bound falls back to interactive prompting.
	if cfg.SeedURL == "" {
		cfg.SeedURL, err = promptSeedURL(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}
	if interactiveRequested(cmd, args) {
		cfg.MaxPages, err = promptMaxPages(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	cfg.SeedURL = ensureScheme(cfg.SeedURL)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewConsoleLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runCrawl(ctx, cmd, cfg, logger)
}

// interactiveRequested reports whether the run started without a seed
// argument, which switches the tool into prompting mode.
func interactiveRequested(cmd *cobra.Command, args []string) bool {
	return len(args) == 0 && !cmd.Flags().Changed("max-pages")
}

// buildConfig creates a Config from the config file and cobra flags.
// Precedence: defaults, then config file, then explicit flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	configPathFlag, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath = configPathFlag

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently keep defaults if no file found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if configPathFlag != "" {
		return nil, fmt.Errorf("configuration file not found: %s", configPathFlag)
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	if cfg.MarkdownSummary && cfg.JSONSummary {
		return nil, errors.New("--markdown and --json are mutually exclusive")
	}

	if len(args) > 0 {
		cfg.SeedURL = args[0]
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// applyFlags copies explicitly set flag values onto the config so that
// flags override the config file.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	var err error

	if cmd.Flags().Changed("max-pages") {
		if cfg.MaxPages, err = cmd.Flags().GetInt("max-pages"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("delay") {
		if cfg.Delay, err = cmd.Flags().GetDuration("delay"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("timeout") {
		if cfg.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("retries") {
		if cfg.MaxRetries, err = cmd.Flags().GetInt("retries"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("retry-delay") {
		if cfg.RetryDelay, err = cmd.Flags().GetDuration("retry-delay"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("batch") {
		if cfg.BatchSize, err = cmd.Flags().GetInt("batch"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("output") {
		if cfg.OutputDir, err = cmd.Flags().GetString("output"); err != nil {
			return err
		}
	}

	if cfg.AssumeYes, err = cmd.Flags().GetBool("yes"); err != nil {
		return err
	}
	if cfg.MarkdownSummary, err = cmd.Flags().GetBool("markdown"); err != nil {
		return err
	}
	if cfg.JSONSummary, err = cmd.Flags().GetBool("json"); err != nil {
		return err
	}
	if cfg.SummaryFile, err = cmd.Flags().GetString("summary-file"); err != nil {
		return err
	}

	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// runCrawl executes the two-phase crawl.
func runCrawl(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	// The browser session is the one shared stateful resource; it must
	// be released on every exit path.
	session := browser.New(
		browser.WithTimeout(cfg.Timeout),
		browser.WithRenderWait(cfg.RenderWait),
		browser.WithLogger(logger),
	)
	defer func() {
		if err := session.Close(); err != nil {
			logger.Warn("failed to close browser session", "error", err)
		}
	}()

	renderer, err := document.NewPDFRenderer(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to initialize output: %w", err)
	}

	fetcher := crawler.NewFetcher(session,
		crawler.WithMaxRetries(cfg.MaxRetries),
		crawler.WithRetryDelay(cfg.RetryDelay),
		crawler.WithBatchSize(cfg.BatchSize),
		crawler.WithFetchLogger(logger),
	)

	kw := keywords.NewExtractor(
		keywords.WithKeywordCount(cfg.NumKeywords),
		keywords.WithMaxNgram(cfg.MaxNgram),
	)

	p := pipeline.New(cfg, fetcher, extractor.NewExtractor(), kw, renderer,
		pipeline.WithLogger(logger),
	)
	defer p.Finish()

	urls, err := p.Discover(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("crawl interrupted")
			return nil
		}
		return err
	}
	if len(urls) == 0 {
		return errors.New("no URLs discovered, nothing to generate")
	}

	if !cfg.AssumeYes {
		ok, err := confirmGeneration(cmd.InOrStdin(), cmd.OutOrStdout(), len(urls))
		if err != nil {
			return err
		}
		if !ok {
			// User cancellation is a normal outcome, not a failure.
			logger.Info("PDF creation cancelled by user")
			return nil
		}
	}

	if err := p.Generate(ctx, urls); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("crawl interrupted")
		} else {
			return err
		}
	}
	p.Finish()

	return writeSummary(cfg, p, renderer.OutputDir())
}

// confirmGeneration asks whether to enter the generation phase.
// Affirmative answers are yes/y and their German equivalents ja/j.
func confirmGeneration(in io.Reader, out io.Writer, count int) (bool, error) {
	fmt.Fprintf(out, "\n%d URLs found and saved.\n", count)
	fmt.Fprint(out, "PDFs jetzt erstellen? (yes/no): ")

	line, err := readLine(in)
	if err != nil {
		// EOF without an answer means no confirmation was given.
		return false, nil
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "yes", "y", "ja", "j":
		return true, nil
	default:
		return false, nil
	}
}

// promptSeedURL asks for the seed URL until a parseable one is entered.
func promptSeedURL(in io.Reader, out io.Writer) (string, error) {
	for {
		fmt.Fprint(out, "\nWebsite URL (e.g., https://example.com): ")

		line, err := readLine(in)
		if err != nil {
			return "", errors.New("no URL provided")
		}

		seed := strings.TrimSpace(line)
		if seed == "" {
			fmt.Fprintln(out, "URL cannot be empty.")
			continue
		}

		seed = ensureScheme(seed)
		if u, err := url.Parse(seed); err != nil || u.Host == "" {
			fmt.Fprintln(out, "Invalid URL format.")
			continue
		}

		fmt.Fprintf(out, "URL accepted: %s\n", seed)
		return seed, nil
	}
}

// promptMaxPages asks for the page bound until a positive number is
// entered.
func promptMaxPages(in io.Reader, out io.Writer) (int, error) {
	for {
		fmt.Fprint(out, "\nMax URLs to crawl (e.g., 20, 50, 100): ")

		line, err := readLine(in)
		if err != nil {
			return 0, errors.New("no page count provided")
		}

		input := strings.TrimSpace(line)
		if input == "" {
			fmt.Fprintln(out, "Input cannot be empty.")
			continue
		}

		n, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(out, "Please enter a valid number.")
			continue
		}
		if n <= 0 {
			fmt.Fprintln(out, "Number must be greater than 0.")
			continue
		}

		fmt.Fprintf(out, "Max pages: %d\n", n)
		return n, nil
	}
}

// readLine reads one newline-terminated line from in.
func readLine(in io.Reader) (string, error) {
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				return string(line), nil
			}
			line = append(line, buf[0])
			continue
		}
		if err != nil {
			if len(line) > 0 {
				return string(line), nil
			}
			return "", err
		}
	}
}

// ensureScheme defaults the URL scheme to https when missing.
func ensureScheme(seed string) string {
	if seed == "" {
		return seed
	}
	if !strings.HasPrefix(seed, "http://") && !strings.HasPrefix(seed, "https://") {
		return "https://" + seed
	}
	return seed
}

// writeSummary renders the final run summary to stdout and, when
// requested, to the summary file.
func writeSummary(cfg *config.Config, p *pipeline.Pipeline, outputDir string) error {
	summary := &report.Summary{
		StartURL:  cfg.SeedURL,
		OutputDir: outputDir,
		Stats:     p.Stats(),
	}

	writers := []report.Writer{report.NewSimpleWriter(os.Stdout)}

	if cfg.SummaryFile != "" {
		if dir := filepath.Dir(cfg.SummaryFile); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("failed to create summary directory: %w", err)
			}
		}
		f, err := os.Create(cfg.SummaryFile) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create summary file: %w", err)
		}
		defer f.Close() //nolint:errcheck // Best effort cleanup

		writers = append(writers, formatWriter(cfg, f))
	} else if cfg.MarkdownSummary || cfg.JSONSummary {
		// Formatted summary to stdout replaces the plain one.
		writers = []report.Writer{formatWriter(cfg, os.Stdout)}
	}

	if _, err := report.NewMultiWriter(writers...).Write(summary); err != nil {
		return fmt.Errorf("failed to write run summary: %w", err)
	}
	return nil
}

// formatWriter picks the summary writer for the configured format.
func formatWriter(cfg *config.Config, out io.Writer) report.Writer {
	switch {
	case cfg.MarkdownSummary:
		return report.NewMarkdownWriter(out)
	case cfg.JSONSummary:
		return report.NewJSONWriter(out, report.WithPrettyPrint())
	default:
		return report.NewSimpleWriter(out)
	}
}
