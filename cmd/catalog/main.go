// Package main implements the catalog command-line tool, which validates and
// browses a content directory without running the API server.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
