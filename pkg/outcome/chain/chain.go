package chain

import (
	"github.com/ib-77/outcome/pkg/outcome"
)

// Chain wraps an outcome.Outcome to enable fluent composition.
type Chain[T any, F error] struct {
	res outcome.Outcome[T, F]
}

// Start creates a new chain from an existing outcome
func Start[T any, F error](o outcome.Outcome[T, F]) Chain[T, F] {
	return Chain[T, F]{res: o}
}

// FromValue creates a new chain from a successful value, with the failure
// lane fixed to AnyError
func FromValue[T any](v T) Chain[T, outcome.AnyError] {
	return Start(outcome.Success[T, outcome.AnyError](v))
}

// Outcome returns the underlying outcome.Outcome
func (c Chain[T, F]) Outcome() outcome.Outcome[T, F] {
	return c.res
}

// Then composes functions that already return outcome.Outcome[T, F]
func (c Chain[T, F]) Then(onSuccess func(t T) outcome.Outcome[T, F]) Chain[T, F] {
	if c.res.IsFailure() {
		return c
	}
	v, _ := c.res.Value()
	return Chain[T, F]{res: onSuccess(v)}
}

// Map transforms the successful value to a new value
func (c Chain[T, F]) Map(onSuccess func(t T) T) Chain[T, F] {
	if c.res.IsFailure() {
		return c
	}
	v, _ := c.res.Value()
	return Chain[T, F]{res: outcome.Success[T, F](onSuccess(v))}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, F]) Ensure(onSuccess func(t T), onFailure func(err F)) Chain[T, F] {
	if v, ok := c.res.Value(); ok {
		if onSuccess != nil {
			onSuccess(v)
		}
		return c
	}

	if err, failed := c.res.Err(); failed && onFailure != nil {
		onFailure(err)
	}
	return c
}

// Recover collapses the chain to the success value or the lazy fallback
func (c Chain[T, F]) Recover(fallback func() T) T {
	return c.res.Recover(fallback)
}

// RecoverWith swaps a failed chain for the lazy fallback outcome
func (c Chain[T, F]) RecoverWith(fallback func() outcome.Outcome[T, F]) Chain[T, F] {
	return Chain[T, F]{res: c.res.RecoverWith(fallback)}
}

// Then chains a function that moves the chain to a new success type
func Then[T, U any, F error](c Chain[T, F], onSuccess func(t T) outcome.Outcome[U, F]) Chain[U, F] {
	if c.res.IsFailure() {
		return Chain[U, F]{res: outcome.FailureFrom[T, U](c.res)}
	}
	v, _ := c.res.Value()
	return Chain[U, F]{res: onSuccess(v)}
}

// Map chains a pure transformation to a new success type
func Map[T, U any, F error](c Chain[T, F], onSuccess func(t T) U) Chain[U, F] {
	return Chain[U, F]{res: outcome.CompactMap(c.res,
		func(v T, _ bool) U {
			return onSuccess(v)
		})}
}

// ThenTry chains a function that returns (U, error), normalizing the error
// into the erased failure lane
func ThenTry[T, U any](c Chain[T, outcome.AnyError], try func(t T) (U, error)) Chain[U, outcome.AnyError] {
	return Chain[U, outcome.AnyError]{res: outcome.TryMap(c.res, try)}
}

// Finally collapses the chain to a final value via outcome.Analysis
func Finally[T any, F error, U any](c Chain[T, F],
	onSuccess func(t T) U, onFailure func(err F) U) U {
	return outcome.Analysis(c.res, onSuccess, onFailure)
}
