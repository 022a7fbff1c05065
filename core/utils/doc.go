// Package utils provides small conversion helpers for values whose concrete type
// depends on the database driver and protocol (integers, text, raw bytes).
package utils
