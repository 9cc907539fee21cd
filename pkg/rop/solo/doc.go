// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[F, S]. These functions form the core building blocks for
// failure-aware pipelines without channels.
//
// Highlights:
// - Succeed/Fail: construct Result[F, S]
// - Validate/AndValidate/ValidateAll: turn invalid input into a failure
// - Switch: move from Result[F, In] to Result[F, Out]
// - Map/MapFailure/DoubleMap/Recover: transform one or both sides
// - Try/FailOnError: call error-returning functions and keep the error as failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
//
// A failure short-circuits every step: success callbacks are not called and
// the failure value is passed on as is.
package solo
