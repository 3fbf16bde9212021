// Package catalog implements the stateless domain services that derive views
// over collections of categories and patterns: tag filtering, free-text
// search, display ordering and per-category counts.
//
// All functions are pure. They never modify the slices they receive and
// always return a new slice, so callers may share repository results freely.
package catalog
