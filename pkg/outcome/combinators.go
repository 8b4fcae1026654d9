package outcome

import "errors"

// Pair carries the two success values produced by Fanout.
type Pair[A, B any] struct {
	First  A
	Second B
}

// CompactMap applies transform to the success value, viewed as a populated
// optional, and wraps the result in a new success. A failure is re-wrapped
// verbatim and transform is never invoked; the empty branch of the optional
// is therefore never taken in practice.
func CompactMap[In, Out any, F error](input Outcome[In, F],
	transform func(value In, ok bool) Out) Outcome[Out, F] {

	if input.IsSuccess() {
		return Success[Out, F](transform(input.value, true))
	}
	return FailureFrom[In, Out](input)
}

// CompactMapError is the error-side mirror of CompactMap: a success is
// carried through untouched, a failure applies transform to the populated
// error optional.
func CompactMapError[S any, F, E error](input Outcome[S, F],
	transform func(err F, ok bool) E) Outcome[S, E] {

	if input.IsSuccess() {
		return successAs[S, F, E](input)
	}
	return Failure[S](transform(input.err, true))
}

// BiMap applies the matching function to whichever variant is present.
func BiMap[In, Out any, F, E error](input Outcome[In, F],
	onSuccess func(In) Out, onFailure func(F) E) Outcome[Out, E] {

	if input.IsSuccess() {
		return Success[Out, E](onSuccess(input.value))
	}
	return Failure[Out](onFailure(input.err))
}

// Fanout pairs the success values of input and other(). The first failure
// wins, left-biased: other runs only when input succeeded.
func Fanout[In, Out any, F error](input Outcome[In, F],
	other func() Outcome[Out, F]) Outcome[Pair[In, Out], F] {

	if input.IsFailure() {
		return FailureFrom[In, Pair[In, Out]](input)
	}

	right := other()
	if right.IsFailure() {
		return FailureFrom[Out, Pair[In, Out]](right)
	}

	return Success[Pair[In, Out], F](Pair[In, Out]{First: input.value, Second: right.value})
}

// Analysis folds the outcome to a single value, invoking exactly one branch.
func Analysis[In any, F error, Out any](input Outcome[In, F],
	ifSuccess func(In) Out, ifFailure func(F) Out) Out {

	if input.IsSuccess() {
		return ifSuccess(input.value)
	}
	return ifFailure(input.err)
}

// TryMap applies an error-returning transform to the success value and
// normalizes any returned error into AnyError. A failed input is re-wrapped
// unchanged (erased, identity preserved) and transform is never invoked.
func TryMap[In, Out any, F error](input Outcome[In, F],
	transform func(In) (Out, error)) Outcome[Out, AnyError] {

	if input.IsFailure() {
		return failureAs[In, Out](input, Erase(input.err))
	}

	out, err := transform(input.value)
	if err != nil {
		return Failure[Out](Erase(err))
	}
	return Success[Out, AnyError](out)
}

// TryMapInto is TryMap for failure types that declare ErrorConvertible:
// the transform's error is absorbed through F's own FromError instead of
// being erased.
func TryMapInto[In, Out any, F ErrorConvertible[F]](input Outcome[In, F],
	transform func(In) (Out, error)) Outcome[Out, F] {

	if input.IsFailure() {
		return FailureFrom[In, Out](input)
	}

	out, err := transform(input.value)
	if err != nil {
		var conv F
		return Failure[Out](conv.FromError(err))
	}
	return Success[Out, F](out)
}

// ValidateAll runs every check against the success value and joins the
// collected errors into a single erased failure. A failed input passes
// through and no check runs.
func ValidateAll[S any](input Outcome[S, AnyError],
	checks ...func(S) error) Outcome[S, AnyError] {

	if input.IsFailure() {
		return input
	}

	var errs []error
	for _, check := range checks {
		if err := check(input.value); err != nil {
			errs = append(errs, GetErrors(err)...)
		}
	}

	if len(errs) == 0 {
		return input
	}
	return Failure[S](Erase(errors.Join(errs...)))
}

func successAs[S any, F, E error](from Outcome[S, F]) Outcome[S, E] {
	return Outcome[S, E]{
		value:     from.value,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func failureAs[In, Out any, F, E error](from Outcome[In, F], err E) Outcome[Out, E] {
	return Outcome[Out, E]{
		err:       err,
		createdAt: from.createdAt,
		id:        from.id,
	}
}
