// Package ratio splits an integer amount of linear space between edges.
//
// # Overview
//
// An edge is one unit of layout (a column, a row, a panel) competing for a
// shared total, typically a terminal width or height in cells. Each [Edge]
// is either fixed, with a size decided elsewhere, or flexible, with a
// relative weight ([Edge.Ratio]) and a floor ([Edge.MinimumSize]).
//
// The package has three independent entry points. None of them is a stage
// of the others; callers use whichever matches the question they have.
//
//   - [Resolve]: turn a mix of fixed and flexible edges into concrete sizes.
//   - [Reduce]: shrink existing sizes by a total amount, weighted, with a
//     per-slot cap on how much may be removed.
//   - [Distribute]: split a total purely by weight, with optional minimums.
//
// # Rounding
//
// Each function rounds differently and the difference is observable:
//
//   - [Resolve] carries the fractional remainder of each share into the next
//     flexible edge, so the flexible pool always sums to the space left.
//   - [Reduce] rounds every share to the nearest integer (half to even). When
//     caps bind the removed total may differ from the request by a small
//     residue; that is the documented behavior.
//   - [Distribute] rounds every share up. Earlier slots are more likely to
//     receive the extra unit and the last slot absorbs the difference, so
//     the parts sum to exactly the total.
//
// All arithmetic is done on integers. Shares are compared and divided as
// exact fractions, so results do not depend on floating point.
//
// # Ordering
//
// Input order matters. When several flexible edges would fall below their
// minimum in [Resolve], the first one in input order is clamped and the
// split is recomputed; when space runs out, later edges are the ones that
// receive zero.
//
// # Errors
//
// Malformed input (a negative total, negative weights, mismatched list
// lengths) returns an error with code errors.ErrCodeInvalidInput.
// [Distribute] additionally returns errors.ErrCodeInvalidConfiguration
// when no slot carries a positive weight. Insufficient space is not an
// error: [Resolve] hands out zeros and [Reduce] stops at each cap.
//
// # Concurrency
//
// Every function is pure. Inputs are never modified and every call returns
// a newly allocated slice, so concurrent use needs no coordination.
package ratio
