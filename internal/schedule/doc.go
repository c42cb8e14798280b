// Package schedule implements the interval intersection engine: working-hours
// overlap computation across participants in independent timezones, and the
// fixed-step meeting slot scan.
//
// All computations are pure over validated input. Bounds are small and fixed:
// O(participants^2) for pairwise overlap and one 30-minute-step scan per day
// for slot finding.
package schedule
