// Package solo contains free functions over oxide containers for the
// operations a method cannot express: those that change the payload type.
//
// Highlights:
// - Map/AndThen/Try: move from Result[In] to Result[Out]
// - Validate/FailOnError: turn a failed check into Err
// - Flatten: remove one level of Result nesting
// - Match/MatchOption/MatchEither: reduce a container via per-variant handlers
// - DoubleMap: map both Result branches into an Ok
// - MapOption/AndThenOption, MapLeft/MapRight/LeftAndThen/RightAndThen
// - OkOr/ToOption/ErrToOption/LeftToOption/RightToOption/ToEither: conversions
//
// Result functions recover callback panics into Err; Option and Either
// functions let them propagate.
package solo
