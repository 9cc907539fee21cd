// Package tiny provides a minimal fluent Chain[T] for synchronous
// composition of Result[error, T] values.
//
// It parallels the chain package but keeps API surface very small and the
// value type fixed:
// - Start/FromValue: create a Chain with its own Id and creation time
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the value
// - RepeatUntil/While and their Chain variants: loop while successful
// - Or/And: pick between chains
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Tiny is ideal for small services or tests where lightweight synchronous
// chaining improves readability.
package tiny
