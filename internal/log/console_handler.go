package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// ANSI escape sequences for level coloring.
const (
	colorCyan    = "\033[36m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorRed     = "\033[31m"
	colorMagenta = "\033[35m"
	colorReset   = "\033[0m"
)

// levelColor returns the ANSI color for a log level.
func levelColor(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return colorCyan
	case level < slog.LevelWarn:
		return colorGreen
	case level < slog.LevelError:
		return colorYellow
	case level < slog.LevelError+4:
		return colorRed
	default:
		return colorMagenta
	}
}

// ConsoleHandler is an slog.Handler that writes compact, level-colored
// lines for interactive terminal use:
//
//	INFO: page fetched url=https://example.com/ attempt=1
//
// Design decision: We implement a handler rather than wrapping a custom
// logger type because:
//  1. It integrates seamlessly with standard slog APIs
//  2. Components only ever see *slog.Logger, never this package
//  3. The JSON variant below can be swapped in without touching callers
type ConsoleHandler struct {
	// mu serializes writes so concurrent loggers cannot interleave lines.
	mu *sync.Mutex

	// out is the destination writer, typically os.Stderr.
	out io.Writer

	// level is the minimum level this handler emits.
	level slog.Level

	// color enables ANSI coloring of the level prefix.
	color bool

	// attrs holds attributes added via WithAttrs.
	attrs []slog.Attr

	// groups holds group names added via WithGroup, used as key prefixes.
	groups []string
}

// ConsoleOption configures a ConsoleHandler.
type ConsoleOption func(*ConsoleHandler)

// WithColor enables or disables ANSI coloring. Enabled by default;
// disable when writing to a file or a pipe.
func WithColor(enabled bool) ConsoleOption {
	return func(h *ConsoleHandler) {
		h.color = enabled
	}
}

// WithLevel sets the minimum level the handler emits.
func WithLevel(level slog.Level) ConsoleOption {
	return func(h *ConsoleHandler) {
		h.level = level
	}
}

// NewConsoleHandler creates a ConsoleHandler writing to w.
func NewConsoleHandler(w io.Writer, opts ...ConsoleOption) *ConsoleHandler {
	h := &ConsoleHandler{
		mu:    &sync.Mutex{},
		out:   w,
		level: slog.LevelInfo,
		color: true,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and writes a single record.
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	label := r.Level.String()
	if h.color {
		sb.WriteString(levelColor(r.Level))
		sb.WriteString(label)
		sb.WriteString(colorReset)
	} else {
		sb.WriteString(label)
	}
	sb.WriteString(": ")
	sb.WriteString(r.Message)

	prefix := strings.Join(h.groups, ".")
	for _, a := range h.attrs {
		h.appendAttr(&sb, prefix, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&sb, prefix, a)
		return true
	})

	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

// appendAttr writes one attribute as " key=value", flattening groups.
func (h *ConsoleHandler) appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			h.appendAttr(sb, key, ga)
		}
		return
	}

	fmt.Fprintf(sb, " %s=%v", key, a.Value)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

// WithGroup returns a new handler with the given group name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

// NewConsoleLogger creates a *slog.Logger with colored console output.
//
// Parameters:
//   - w: the io.Writer to write log output to (typically os.Stderr)
//   - verbose: if true, sets log level to Debug; otherwise Info
//
// Returns a logger that can be used with slog.SetDefault() or passed to
// components that accept *slog.Logger.
func NewConsoleLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(NewConsoleHandler(w, WithLevel(level)))
}

// NewJSONLogger creates a *slog.Logger that outputs JSON records.
// Useful when papercrawl runs non-interactively and logs are aggregated.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}
