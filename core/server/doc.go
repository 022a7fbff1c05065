// Package server holds the HTTP server configuration.
//
// The main entry point (cmd/start.go) owns the server lifecycle; this package
// only defines the listen port and the API key, and validates them.
package server
