// Package schema validates the tables the game database reads.
//
// The column names of servers, charinfo and friends, and the meaning of
// friends.best_friend, are a fixed contract with the schema. The GORM models in
// this package describe that contract; CheckSchema compares them against
// SHOW COLUMNS (or PRAGMA table_info on SQLite) and reports missing tables,
// missing columns and type mismatches.
//
// Type checks are soft: the model's type is a substring of the live type.
//
// # HTTP Endpoints
//
//   - GET /schema : runs the check.
package schema
