package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome holds either a success value of type S or a failure value of
// type F. Exactly one variant is populated; values are immutable and every
// operation returns a new Outcome.
type Outcome[S any, F error] struct {
	id        uuid.UUID
	createdAt time.Time
	value     S
	err       F
	isSuccess bool
}

func Success[S any, F error](v S) Outcome[S, F] {
	return Outcome[S, F]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[S any, F error](err F) Outcome[S, F] {
	return Outcome[S, F]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromOption builds a success from a populated optional, or a failure from
// the failWith thunk. The thunk runs only on the empty branch.
func FromOption[S any, F error](value S, ok bool, failWith func() F) Outcome[S, F] {
	if ok {
		return Success[S, F](value)
	}
	return Failure[S](failWith())
}

// Catch runs f and converts its error return into the failure variant.
// When F is AnyError the error is erased; for any other F the error must
// already be an F — a mismatch is a contract violation and panics.
func Catch[S any, F error](f func() (S, error)) Outcome[S, F] {
	v, err := f()
	if err == nil {
		return Success[S, F](v)
	}
	if _, erased := any(*new(F)).(AnyError); erased {
		return Failure[S](any(Erase(err)).(F))
	}
	return Failure[S](err.(F))
}

// FailureFrom re-tags a failed Outcome to a new success type, carrying the
// failure payload and identity forward.
func FailureFrom[In, Out any, F error](from Outcome[In, F]) Outcome[Out, F] {
	return Outcome[Out, F]{
		err:       from.err,
		isSuccess: from.isSuccess,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the success payload, with ok reporting whether it is present.
func (o Outcome[S, F]) Value() (S, bool) {
	return o.value, o.isSuccess
}

// Err returns the failure payload, with ok reporting whether it is present.
func (o Outcome[S, F]) Err() (F, bool) {
	return o.err, !o.isSuccess
}

func (o Outcome[S, F]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[S, F]) IsFailure() bool {
	return !o.isSuccess
}

func (o Outcome[S, F]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[S, F]) Id() uuid.UUID {
	return o.id
}

// Get unwraps into Go's ambient (value, error) convention: the success
// value with a nil error, or the zero value with the failure payload.
func (o Outcome[S, F]) Get() (S, error) {
	if o.isSuccess {
		return o.value, nil
	}
	var zero S
	return zero, o.err
}

// Recover returns the success value, or lazily evaluates fallback on failure.
func (o Outcome[S, F]) Recover(fallback func() S) S {
	if o.isSuccess {
		return o.value
	}
	return fallback()
}

// RecoverWith returns o if it succeeded, or lazily evaluates fallback on
// failure. Together with Recover this carries `left ?? right` semantics.
func (o Outcome[S, F]) RecoverWith(fallback func() Outcome[S, F]) Outcome[S, F] {
	if o.isSuccess {
		return o
	}
	return fallback()
}

// String renders the populated variant for diagnostics, not for parsing.
func (o Outcome[S, F]) String() string {
	if o.isSuccess {
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return fmt.Sprintf("Failure(%v)", o.err)
}
