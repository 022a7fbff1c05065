// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: API key validation (X-API-Key) protecting every endpoint.
//   - RayID: a unique request ID (RayID) per request, stored in the context and
//     echoed in the X-Ray-ID response header for tracing.
//
// Both are registered globally in cmd/start.go, RayID first.
package middleware
