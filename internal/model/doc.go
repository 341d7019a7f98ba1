// Package model defines the core data types shared across papercrawl:
// run statistics, extracted documents, and the typed content blocks that
// make up a paginated artifact.
//
// The types in this package are plain values with no behavior beyond
// derived accessors. All mutation happens in the pipeline package, which
// owns the run state.
package model
