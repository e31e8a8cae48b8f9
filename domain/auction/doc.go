// Package auction implements the core of the periodic double-auction:
// batch partitioning, priority ranking, the crossing loop, the
// clearing-price decision table and residual book construction.
//
// Everything here is pure and cycle-local. One drained batch flows
// strictly downward through Partition -> Rank -> Match -> ResolvePrice
// -> BuildBook, single-threaded and deterministic. No I/O, no clocks,
// no shared state.
package auction
