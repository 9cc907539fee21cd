package rop

import "github.com/tarantool/go-option"

// Discriminator reports which variant a value holds
type Discriminator interface {
	// IsFailure returns true if the value holds a failure
	IsFailure() bool
	// IsSuccess returns true if the value holds a success
	IsSuccess() bool
}

// Narrower gives access to one side of a two-variant value. The side that is
// not held comes back as None, never as a panic.
type Narrower[F, S any] interface {
	// GetSuccess returns the success value if present
	GetSuccess() option.Generic[S]
	// GetFailure returns the failure value if present
	GetFailure() option.Generic[F]
}

// Hasher is implemented by payloads that supply their own hash. It must agree
// with the payload's equality.
type Hasher interface {
	Hash() uint64
}

// Equaler is implemented by payloads with their own notion of equality,
// like time.Time.
type Equaler[T any] interface {
	Equal(T) bool
}
