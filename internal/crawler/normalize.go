package crawler

import (
	"net/url"
	"strings"
)

// Normalize canonicalizes a URL so that equivalent pages compare equal:
//
//   - a missing scheme is defaulted to https
//   - http is rewritten to https
//   - the trailing path slash is stripped; an empty path becomes "/"
//   - query string and fragment are removed entirely
//
// Two URLs differing only in query parameters are treated as the same
// page. That is an explicit policy choice: on the sites this tool targets,
// query variants (tracking parameters, session tokens, sort orders) serve
// the same content, and keeping them would blow up the frontier.
//
// Normalize never fails. If the input cannot be parsed it is returned
// unchanged, degrading that URL to an un-deduplicated pass-through.
func Normalize(raw string) string {
	candidate := raw
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}

	u, err := url.Parse(candidate)
	if err != nil || u.Host == "" {
		return raw
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme == "http" {
		scheme = "https"
	}

	path := strings.TrimRight(u.Path, "/")
	if path == "" {
		path = "/"
	}

	normalized := url.URL{
		Scheme: scheme,
		Host:   strings.ToLower(u.Host),
		Path:   path,
	}
	return normalized.String()
}

// Host returns the network location of a URL after normalization,
// or the empty string when the URL cannot be parsed.
func Host(raw string) string {
	u, err := url.Parse(Normalize(raw))
	if err != nil {
		return ""
	}
	return u.Host
}
