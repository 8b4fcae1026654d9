package outcome

// AnyError hides the concrete type of an underlying failure so outcomes
// with heterogeneous failure types can share one failure lane.
type AnyError struct {
	err error
}

// Erase wraps err behind AnyError. Erasing an AnyError returns it
// unchanged: the wrapper never nests.
func Erase(err error) AnyError {
	if erased, ok := err.(AnyError); ok {
		return erased
	}
	return AnyError{err: err}
}

// Underlying returns the wrapped original failure.
func (e AnyError) Underlying() error {
	return e.err
}

// Unwrap exposes the underlying failure to errors.Is and errors.As.
func (e AnyError) Unwrap() error {
	return e.err
}

func (e AnyError) Error() string {
	if IsNil(e.err) {
		return ""
	}
	return e.err.Error()
}

// FromError satisfies ErrorConvertible, letting AnyError absorb any error.
func (e AnyError) FromError(err error) AnyError {
	return Erase(err)
}

// Message delegates to the underlying failure when it exposes one.
func (e AnyError) Message() (string, bool) {
	if m, ok := e.err.(Messenger); ok {
		return m.Message(), true
	}
	return "", false
}

func (e AnyError) Reason() (string, bool) {
	if r, ok := e.err.(Reasoner); ok {
		return r.Reason(), true
	}
	return "", false
}

func (e AnyError) HelpText() (string, bool) {
	if h, ok := e.err.(Helper); ok {
		return h.HelpText(), true
	}
	return "", false
}

func (e AnyError) RecoverySuggestion() (string, bool) {
	if r, ok := e.err.(RecoverySuggester); ok {
		return r.RecoverySuggestion(), true
	}
	return "", false
}
