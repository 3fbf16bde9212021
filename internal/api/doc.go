// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the catalog use cases, translating HTTP concerns to catalog queries.
package api
