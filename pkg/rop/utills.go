package rop

import (
	"reflect"

	"go.uber.org/multierr"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors splits err into the errors it combines. A nil err gives an empty
// slice.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}
	return multierr.Errors(err)
}

// FromError turns the (value, error) pair returned by most Go functions into a
// Result. A non-nil err always wins, including a typed nil stored in the
// error interface, the same way err != nil reports it.
func FromError[S any](value S, err error) Result[error, S] {
	if err != nil {
		return Fail[error, S](err)
	}
	return Success[error](value)
}
