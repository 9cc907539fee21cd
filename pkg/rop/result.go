package rop

import (
	"fmt"

	"github.com/tarantool/go-option"
)

// Result holds either a failure value of type F or a success value of type S,
// never both and never neither. The only implementations are Failed and
// Succeeded.
type Result[F, S any] interface {
	Discriminator
	Narrower[F, S]

	// Get returns the held payload. Check IsSuccess/IsFailure first, or
	// prefer When.
	Get() any
	// Equal reports whether other is the same variant holding an equal payload.
	Equal(other Result[F, S]) bool
	// Hash returns the hash of the held payload. The variant is not encoded.
	Hash() uint64
	String() string

	dispatch(onFailure func(F), onSuccess func(S))
}

type Failed[F, S any] struct {
	value F
}

type Succeeded[F, S any] struct {
	value S
}

func Fail[F, S any](value F) Result[F, S] {
	return Failed[F, S]{value: value}
}

func Success[F, S any](value S) Result[F, S] {
	return Succeeded[F, S]{value: value}
}

// When calls onFailure or onSuccess, whichever matches the variant of r, and
// returns what it returns. The other callback is never invoked.
func When[F, S, W any](r Result[F, S], onFailure func(F) W, onSuccess func(S) W) W {
	var out W
	r.dispatch(
		func(f F) { out = onFailure(f) },
		func(s S) { out = onSuccess(s) })
	return out
}

func (r Failed[F, S]) Value() F {
	return r.value
}

func (r Failed[F, S]) Get() any {
	return r.value
}

func (r Failed[F, S]) GetSuccess() option.Generic[S] {
	return option.None[S]()
}

func (r Failed[F, S]) GetFailure() option.Generic[F] {
	return option.Some(r.value)
}

func (r Failed[F, S]) IsFailure() bool {
	return true
}

func (r Failed[F, S]) IsSuccess() bool {
	return false
}

func (r Failed[F, S]) Equal(other Result[F, S]) bool {
	o, ok := other.(Failed[F, S])
	return ok && equalPayload(r.value, o.value)
}

func (r Failed[F, S]) Hash() uint64 {
	return HashOf(r.value)
}

func (r Failed[F, S]) String() string {
	return fmt.Sprintf("Failure(%v)", r.value)
}

func (r Failed[F, S]) dispatch(onFailure func(F), _ func(S)) {
	onFailure(r.value)
}

func (r Succeeded[F, S]) Value() S {
	return r.value
}

func (r Succeeded[F, S]) Get() any {
	return r.value
}

func (r Succeeded[F, S]) GetSuccess() option.Generic[S] {
	return option.Some(r.value)
}

func (r Succeeded[F, S]) GetFailure() option.Generic[F] {
	return option.None[F]()
}

func (r Succeeded[F, S]) IsFailure() bool {
	return false
}

func (r Succeeded[F, S]) IsSuccess() bool {
	return true
}

func (r Succeeded[F, S]) Equal(other Result[F, S]) bool {
	o, ok := other.(Succeeded[F, S])
	return ok && equalPayload(r.value, o.value)
}

func (r Succeeded[F, S]) Hash() uint64 {
	return HashOf(r.value)
}

func (r Succeeded[F, S]) String() string {
	return fmt.Sprintf("Success(%v)", r.value)
}

func (r Succeeded[F, S]) dispatch(_ func(F), onSuccess func(S)) {
	onSuccess(r.value)
}

// SuccessResult is the success payload for operations whose success carries
// no data.
type SuccessResult struct{}

// Done is the SuccessResult value.
var Done = SuccessResult{}

func (SuccessResult) String() string {
	return "done"
}

// Completed returns a Success holding Done.
func Completed[F any]() Result[F, SuccessResult] {
	return Success[F](Done)
}
