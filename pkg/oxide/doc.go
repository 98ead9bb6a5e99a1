// Package oxide provides immutable Result, Option and Either containers with
// a shared chaining protocol.
//
// Highlights:
// - Ok/Err/Errs/ErrOf: construct Result[T]; Err payloads always carry a stack trace
// - Some/None/OptionOf/FromPtr: construct Option[T]; OptionOf maps nil to None
// - Left/Right: construct Either[L, R]
// - Map/AndThen/OrElse/Inspect*: same-type chaining; Result turns callback panics into Err
// - Unwrap*/Get: read payloads; the wrong variant panics with *UnwrapError
// - Flatten: collapse Results nested in Ok
// - IntoResult/Collect: fold many values into one Result
// - FromOutcome/From: convert a finished computation into a Result
//
// Operations that change the payload type live in package solo.
package oxide
