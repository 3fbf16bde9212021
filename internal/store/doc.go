// Package store defines the read-only repository ports the application layer
// depends on. The interfaces hide how content is stored and loaded, so use
// cases can be served by the filesystem content adapter, an in-memory
// repository, or a test double without change.
//
// Lookups by slug signal absence with a nil entity and a nil error; an error
// is only returned when the underlying content source fails.
package store
