// Package memory provides in-process implementations of the store ports over
// fixed slices of already-constructed entities. They back tests and serve as
// the lookup layer for content snapshots loaded by the content adapter.
package memory
