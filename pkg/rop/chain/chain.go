package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[F, T any] struct {
	ctx    context.Context
	result rop.Result[F, T]
}

// Start creates a new chain from a rop.Result
func Start[F, T any](ctx context.Context, result rop.Result[F, T]) *Chain[F, T] {
	return &Chain[F, T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[F, T any](ctx context.Context, value T) *Chain[F, T] {
	return &Chain[F, T]{
		ctx:    ctx,
		result: rop.Success[F](value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[F, T]) Result() rop.Result[F, T] {
	return c.result
}

// Then chains a function that returns rop.Result[F, U]
func Then[F, T, U any](c *Chain[F, T], onSuccess func(context.Context, T) rop.Result[F, U]) *Chain[F, U] {
	return &Chain[F, U]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[error, T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[error, U] {
	return &Chain[error, U]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[F, T, U any](c *Chain[F, T], onSuccess func(context.Context, T) U) *Chain[F, U] {
	return &Chain[F, U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// MapFailure chains a transformation of the failure value
func MapFailure[F, G, T any](c *Chain[F, T], onFailure func(context.Context, F) G) *Chain[G, T] {
	return &Chain[G, T]{
		ctx:    c.ctx,
		result: solo.MapFailure(c.ctx, c.result, onFailure),
	}
}

// Ensure performs side effects without changing the result. onFailure may be
// nil.
func (c *Chain[F, T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, F)) *Chain[F, T] {
	if onFailure == nil {
		onFailure = func(context.Context, F) {}
	}
	return &Chain[F, T]{
		ctx:    c.ctx,
		result: solo.DoubleTee(c.ctx, c.result, onSuccess, onFailure),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[F, T, U any](c *Chain[F, T], onSuccess func(context.Context, T) U, onFailure func(context.Context, F) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
