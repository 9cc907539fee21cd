package tiny

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/outcome/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failureOf[T any](t *testing.T, r rop.Result[error, T]) error {
	t.Helper()
	err, ok := r.GetFailure().Get()
	require.True(t, ok, "expected failure, got %v", r)
	return err
}

func TestStartAndResult_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	res := rop.Success[error](5)
	chain := Start(ctx, res)

	assert.True(t, chain.Result().Equal(res))
	assert.NotEqual(t, uuid.Nil, chain.Id())
	assert.WithinDuration(t, time.Now().UTC(), chain.CreatedAt(), time.Minute)
	assert.Equal(t, time.UTC, chain.CreatedAt().Location())
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 7).Result()
	require.True(t, out.IsSuccess())
	assert.Equal(t, 7, out.Get())
}

func TestId_SharedAcrossSteps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	first := FromValue(ctx, 1)
	last := first.
		Map(func(ctx context.Context, v int) int { return v + 1 }).
		ThenTry(func(ctx context.Context, v int) (int, error) { return 0, errors.New("x") })

	assert.Equal(t, first.Id(), last.Id())
	assert.Equal(t, first.CreatedAt(), last.CreatedAt())
	assert.NotEqual(t, first.Id(), FromValue(ctx, 1).Id())
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	called := false
	chain := Start(ctx, rop.Fail[error, int](boom)).
		Then(func(ctx context.Context, t int) rop.Result[error, int] {
			called = true
			return rop.Success[error](t + 1)
		})

	assert.ErrorIs(t, failureOf(t, chain.Result()), boom)
	assert.False(t, called, "onSuccess should not be called when initial result is failure")
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 3).
		Then(func(ctx context.Context, t int) rop.Result[error, int] { return rop.Success[error](t * 2) }).
		Result()

	assert.Equal(t, 6, out.Get())
}

func TestThenTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tryErr := errors.New("try-error")

	out := FromValue(ctx, 4).
		ThenTry(func(ctx context.Context, t int) (int, error) { return t * t, nil }).
		Result()
	assert.Equal(t, 16, out.Get())

	out = FromValue(ctx, 10).
		ThenTry(func(ctx context.Context, t int) (int, error) { return 0, tryErr }).
		Result()
	assert.ErrorIs(t, failureOf(t, out), tryErr)
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	oops := errors.New("oops")
	plus := func(ctx context.Context, t int) int { return t + 3 }

	assert.Equal(t, 8, FromValue(ctx, 5).Map(plus).Result().Get())
	assert.ErrorIs(t, failureOf(t, Start(ctx, rop.Fail[error, int](oops)).Map(plus).Result()), oops)
}

func TestRepeatUntil(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	inc := func(ctx context.Context, t int) rop.Result[error, int] { return rop.Success[error](t + 1) }

	out := FromValue(ctx, 0).
		RepeatUntil(inc, func(ctx context.Context, t int) bool { return t < 5 }).
		Result()
	assert.Equal(t, 5, out.Get())

	// body always runs at least once
	out = FromValue(ctx, 10).
		RepeatUntil(inc, func(ctx context.Context, t int) bool { return t < 5 }).
		Result()
	assert.Equal(t, 11, out.Get())
}

func TestRepeatUntil_StopsOnFailure(t *testing.T) {
	t.Parallel()
	tooBig := errors.New("too big")
	calls := 0
	out := FromValue(context.Background(), 0).
		RepeatUntil(func(ctx context.Context, t int) rop.Result[error, int] {
			calls++
			if t >= 2 {
				return rop.Fail[error, int](tooBig)
			}
			return rop.Success[error](t + 1)
		}, func(ctx context.Context, t int) bool { return true }).
		Result()

	assert.ErrorIs(t, failureOf(t, out), tooBig)
	assert.Equal(t, 3, calls)
}

func TestRepeatChainUntil(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	double := func(ctx context.Context, t int) Chain[int] {
		return FromValue(ctx, t).Map(func(ctx context.Context, v int) int { return v * 2 })
	}

	start := FromValue(ctx, 1)
	out := start.RepeatChainUntil(double, func(ctx context.Context, t int) bool { return t < 16 })
	assert.Equal(t, 16, out.Result().Get())
	assert.Equal(t, start.Id(), out.Id())
}

func TestWhile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	inc := func(ctx context.Context, t int) rop.Result[error, int] { return rop.Success[error](t + 1) }
	below := func(ctx context.Context, t int) bool { return t < 3 }

	assert.Equal(t, 3, FromValue(ctx, 0).While(inc, below).Result().Get())
	// condition false up front: body never runs
	assert.Equal(t, 7, FromValue(ctx, 7).While(inc, below).Result().Get())

	inner := func(ctx context.Context, t int) Chain[int] { return FromValue(ctx, t+1) }
	assert.Equal(t, 3, FromValue(ctx, 0).WhileChain(inner, below).Result().Get())
}

func TestOr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	first := errors.New("first")
	second := errors.New("second")

	out := Start(ctx, rop.Fail[error, int](first)).
		Or(Start(ctx, rop.Fail[error, int](second)), FromValue(ctx, 2)).
		Result()
	assert.Equal(t, 2, out.Get())

	out = Start(ctx, rop.Fail[error, int](first)).
		Or(Start(ctx, rop.Fail[error, int](second))).
		Result()
	assert.ErrorIs(t, failureOf(t, out), first)
}

func TestAnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	bad := errors.New("bad")

	assert.Equal(t, 3, FromValue(ctx, 1).And(FromValue(ctx, 2), FromValue(ctx, 3)).Result().Get())

	out := FromValue(ctx, 1).And(Start(ctx, rop.Fail[error, int](bad)), FromValue(ctx, 3)).Result()
	assert.ErrorIs(t, failureOf(t, out), bad)
}

func TestEnsure_SideEffects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sCalled, fCalled := false, false
	out1 := FromValue(ctx, 11).
		Ensure(func(ctx context.Context, v int) { sCalled = true }, func(ctx context.Context, err error) { fCalled = true }).
		Result()
	assert.Equal(t, 11, out1.Get())
	assert.True(t, sCalled)
	assert.False(t, fCalled)

	sCalled, fCalled = false, false
	bad := errors.New("bad")
	out2 := Start(ctx, rop.Fail[error, int](bad)).
		Ensure(func(ctx context.Context, v int) { sCalled = true }, func(ctx context.Context, err error) { fCalled = true }).
		Result()
	assert.ErrorIs(t, failureOf(t, out2), bad)
	assert.False(t, sCalled)
	assert.True(t, fCalled)

	// nil callbacks should be safe
	assert.Equal(t, 1, FromValue(ctx, 1).Ensure(nil, nil).Result().Get())
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := FromValue(ctx, 3).Finally(
		func(ctx context.Context, v int) int { return v + 100 },
		func(ctx context.Context, err error) int { return -1 },
	)
	assert.Equal(t, 103, s)

	f := Start(ctx, rop.Fail[error, int](errors.New("x"))).Finally(
		func(ctx context.Context, v int) int { return v },
		func(ctx context.Context, err error) int { return -1 },
	)
	assert.Equal(t, -1, f)
}
