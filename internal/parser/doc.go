// Package parser converts loosely formatted, human-authored planning
// documents into typed week-plan records.
//
// All entry points are total functions over strings: malformed, incomplete,
// or unexpected input degrades to partial or empty records (empty lists,
// unset times, the Unassigned day) rather than returning an error or
// panicking. Parsing is a one-way best-effort extraction, not a round-trip
// format. Every function is pure and safe for concurrent use.
package parser
