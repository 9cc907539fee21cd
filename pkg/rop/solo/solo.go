package solo

import (
	"context"

	"github.com/ib-77/outcome/pkg/rop"
	"go.uber.org/multierr"
)

func Succeed[F, S any](input S) rop.Result[F, S] {
	return rop.Success[F](input)
}

func Fail[F, S any](failure F) rop.Result[F, S] {
	return rop.Fail[F, S](failure)
}

func Validate[F, S any](ctx context.Context, input S,
	validate func(ctx context.Context, in S) (isValid bool, failure F)) rop.Result[F, S] {
	return AndValidate(ctx, Succeed[F](input), validate)
}

func AndValidate[F, S any](ctx context.Context, input rop.Result[F, S],
	validate func(ctx context.Context, in S) (valid bool, failure F)) rop.Result[F, S] {

	value, ok := input.GetSuccess().Get()
	if !ok {
		return input
	}

	if isValid, failure := validate(ctx, value); !isValid {
		return rop.Fail[F, S](failure)
	}
	return input
}

// ValidateAll runs every validator against input and collects each
// validator's own failure. With breakOnError it stops at the first one.
func ValidateAll[S any](
	ctx context.Context,
	input rop.Result[error, S],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in rop.Result[error, S]) rop.Result[error, S]) rop.Result[error, S] {

	if input.IsFailure() {
		return input
	}

	var err error
	for _, validate := range inputsF {
		if !rop.IsNil(ctx.Err()) {
			break
		}

		if failure, failed := validate(ctx, input).GetFailure().Get(); failed {
			err = multierr.Append(err, failure)
			if breakOnError {
				break
			}
		}
	}

	if err == nil {
		return input
	}
	return rop.Fail[error, S](err)
}

// Switch passes a success value to onSuccess and returns its Result. A
// failure is carried over untouched.
func Switch[F, In, Out any](ctx context.Context,
	input rop.Result[F, In],
	onSuccess func(ctx context.Context, r In) rop.Result[F, Out]) rop.Result[F, Out] {

	return rop.When(input,
		func(f F) rop.Result[F, Out] { return rop.Fail[F, Out](f) },
		func(s In) rop.Result[F, Out] { return onSuccess(ctx, s) })
}

func Map[F, In, Out any](ctx context.Context,
	input rop.Result[F, In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[F, Out] {

	return Switch(ctx, input, func(ctx context.Context, r In) rop.Result[F, Out] {
		return rop.Success[F](onSuccess(ctx, r))
	})
}

func MapFailure[In, Out, S any](ctx context.Context,
	input rop.Result[In, S],
	onFailure func(ctx context.Context, f In) Out) rop.Result[Out, S] {

	return rop.When(input,
		func(f In) rop.Result[Out, S] { return rop.Fail[Out, S](onFailure(ctx, f)) },
		func(s S) rop.Result[Out, S] { return rop.Success[Out](s) })
}

// Recover turns a failure into a success using onFailure.
func Recover[F, S any](ctx context.Context,
	input rop.Result[F, S],
	onFailure func(ctx context.Context, f F) S) rop.Result[F, S] {

	if failure, failed := input.GetFailure().Get(); failed {
		return rop.Success[F](onFailure(ctx, failure))
	}
	return input
}

func Tee[F, S any](ctx context.Context,
	input rop.Result[F, S],
	onSuccess func(ctx context.Context, r rop.Result[F, S])) rop.Result[F, S] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[F, S any](ctx context.Context,
	input rop.Result[F, S],
	condition func(ctx context.Context, r rop.Result[F, S]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[F, S])) rop.Result[F, S] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[F, S any](ctx context.Context, input rop.Result[F, S],
	onSuccess func(ctx context.Context, r S),
	onFailure func(ctx context.Context, f F)) rop.Result[F, S] {

	rop.When(input,
		func(f F) struct{} {
			onFailure(ctx, f)
			return struct{}{}
		},
		func(s S) struct{} {
			onSuccess(ctx, s)
			return struct{}{}
		})

	return input
}

// DoubleMap maps both sides into a success value.
func DoubleMap[F, In, Out any](ctx context.Context, input rop.Result[F, In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, f F) Out) rop.Result[F, Out] {

	return rop.Success[F](Finally(ctx, input, onSuccess, onFailure))
}

func Try[In, Out any](ctx context.Context, input rop.Result[error, In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[error, Out] {

	return Switch(ctx, input, func(ctx context.Context, r In) rop.Result[error, Out] {
		out, err := onTryExecute(ctx, r)
		return rop.FromError(out, err)
	})
}

func FailOnError[S any](ctx context.Context, input rop.Result[error, S],
	maybeErr func(ctx context.Context, in S) error) rop.Result[error, S] {

	if value, ok := input.GetSuccess().Get(); ok {
		if err := maybeErr(ctx, value); err != nil {
			return rop.Fail[error, S](err)
		}
	}
	return input
}

// Finally reduces input to a single value. Exactly one handler runs.
func Finally[F, In, Out any](ctx context.Context, input rop.Result[F, In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, f F) Out) Out {

	return rop.When(input,
		func(f F) Out { return onFailure(ctx, f) },
		func(s In) Out { return onSuccess(ctx, s) })
}

func Join[F, S any](ctx context.Context,
	input rop.Result[F, S],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[F, S]) rop.Result[F, S],
	inputsF ...func(ctx context.Context, in rop.Result[F, S]) rop.Result[F, S]) rop.Result[F, S] {

	if len(inputsF) == 0 || concat == nil || !rop.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !rop.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !rop.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}
