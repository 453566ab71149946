// Package dt holds the small value types produced by sequence
// consumers: Optional, for results that may be absent, and Pair,
// for keyed or indexed elements.
package dt
