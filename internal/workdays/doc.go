// Package workdays counts business days between dates and evaluates public
// holiday calendars for a small set of countries, merged with caller-defined
// custom holidays held in an injected store.
package workdays
