// Package middleware contains HTTP middleware for the catalog API.
package middleware
