// Package report renders the final run summary in multiple formats.
//
// All writers consume the same Summary value: the run statistics plus
// the seed URL and output directory. The plain-text writer targets the
// terminal; the Markdown writer produces a shareable report; the JSON
// writer feeds downstream tooling. MultiWriter fans one summary out to
// several destinations, typically terminal plus file.
package report
