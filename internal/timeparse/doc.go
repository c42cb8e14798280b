// Package timeparse converts heterogeneous time input (absent, ISO-8601,
// relative keywords, or locale-style date/time patterns) plus a target IANA
// zone into a single normalized zone-aware timestamp.
//
// The parser is deliberately permissive: it never fails past the point of
// producing some timestamp. Input that matches no known interpretation
// degrades to the current instant in the target zone. The degradation is
// observable rather than silent: the result carries a Source tag and the
// parser logs a warning identifying the unparsed input.
//
// Resolution order (first match wins):
//  1. absent input: current instant in the target zone
//  2. strict ISO-8601; an embedded offset is authoritative over the zone
//  3. relative keywords today/tomorrow/yesterday (start-of-day +/- days)
//  4. an ordered fixed-format table, canonical space-separated form first
//  5. time-only formats combined with today's date in the target zone
//  6. fallback to the current instant, with a logged warning
package timeparse
