// Package lookup exposes the game database queries over HTTP.
//
// Absent results are reported as 404 so that clients can tell "nothing
// registered" from a failed query (500).
//
// # HTTP Endpoints
//
//   - GET /master : master server IP and port.
//   - GET /characters/names : approved character names.
//   - GET /characters/:name/exists : whether a name is taken.
//   - GET /friends/:id : friends of a character, with best-friend flags.
package lookup
