package tiny

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/solo"
)

type Chain[T any] struct {
	ctx       context.Context
	id        uuid.UUID
	createdAt time.Time
	res       rop.Result[error, T]
}

func Start[T any](ctx context.Context, r rop.Result[error, T]) Chain[T] {
	return Chain[T]{ctx: ctx, id: uuid.New(), createdAt: time.Now().UTC(), res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rop.Success[error](v))
}

func (c Chain[T]) Result() rop.Result[error, T] {
	return c.res
}

// Id identifies the chain. Every step derived from the same Start shares it.
func (c Chain[T]) Id() uuid.UUID {
	return c.id
}

// CreatedAt time creation (UTC)
func (c Chain[T]) CreatedAt() time.Time {
	return c.createdAt
}

func (c Chain[T]) next(res rop.Result[error, T]) Chain[T] {
	c.res = res
	return c
}

func (c Chain[T]) value() (T, bool) {
	return c.res.GetSuccess().Get()
}

// Then composes functions that already return rop.Result[error, T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rop.Result[error, T]) Chain[T] {
	return c.next(solo.Switch(c.ctx, c.res, onSuccess))
}

func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Result[error, T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		v, ok := c.value()
		if !ok || !until(c.ctx, v) {
			return c
		}
	}
}

func (c Chain[T]) RepeatChainUntil(inC func(ctx context.Context, t T) Chain[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	v, ok := c.value()
	if !ok {
		return c
	}

	for {
		c = c.next(inC(c.ctx, v).res)

		v, ok = c.value()
		if !ok || !until(c.ctx, v) {
			return c
		}
	}
}

func (c Chain[T]) While(onSuccess func(ctx context.Context, t T) rop.Result[error, T],
	while func(ctx context.Context, t T) bool) Chain[T] {

	for v, ok := c.value(); ok && while(c.ctx, v); v, ok = c.value() {
		c = c.Then(onSuccess)
	}
	return c
}

func (c Chain[T]) WhileChain(inC func(ctx context.Context, t T) Chain[T], while func(ctx context.Context, t T) bool) Chain[T] {

	for v, ok := c.value(); ok && while(c.ctx, v); v, ok = c.value() {
		c = c.next(inC(c.ctx, v).res)
	}
	return c
}

// Or returns the first successful chain, otherwise the first failed one.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	for _, ch := range alternatives {
		if ch.res.IsSuccess() {
			return ch
		}
	}
	return c
}

// And returns the first failed chain, otherwise the last one.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return c.next(solo.Try(c.ctx, c.res, try))
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return c.next(solo.Map(c.ctx, c.res, onSuccess))
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if onSuccess == nil {
		onSuccess = func(context.Context, T) {}
	}
	if onFailure == nil {
		onFailure = func(context.Context, error) {}
	}
	solo.DoubleTee(c.ctx, c.res, onSuccess, onFailure)
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}
