// Package rop defines Result, a value that is either a failure or a success.
//
// A Result[F, S] is built with Fail or Success and never changes afterwards.
// Only the two variants in this package, Failed and Succeeded, implement it,
// so a Result cannot hold both payloads or neither.
//
// Inspecting a Result:
// - When: call one of two mandatory callbacks depending on the variant
// - IsFailure/IsSuccess: test the variant
// - GetFailure/GetSuccess: read one side as an option, None when absent
// - Get: read the payload as held
//
// Two Results are Equal when they are the same variant with equal payloads.
// Hash only looks at the payload, so a Failure and a Success holding the same
// value collide on hash while staying unequal.
//
// SuccessResult and its value Done mark a success that carries no data.
//
// The solo, tiny and chain subpackages build pipelines on top of Result.
package rop
