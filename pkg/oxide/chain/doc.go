// Package chain provides a fluent wrapper around oxide.Result[T]
// for building synchronous, context-aware chains using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to Err
// - Map: transform the Ok value (T -> U)
// - Recover: give an Err a chance to return to Ok
// - Ensure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
// - RepeatUntil/While: loop a step while the chain stays Ok
// - Or/And: pick the first Ok chain, or the first failed one
//
// Once the chain's context is done, the next step turns an Ok into an Err
// carrying the context error instead of running.
package chain
