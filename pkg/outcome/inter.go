package outcome

import "time"

type ValueProvider[T any] interface {
	// Value returns the success payload when present
	Value() (T, bool)
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFailure defines an interface for types that can yield a value or an error
type WithFailure[T any] interface {
	ValueProvider[T]
	// Get unwraps to Go's (value, error) convention
	Get() (T, error)
	// IsSuccess returns true if the success variant is populated
	IsSuccess() bool
}

// ErrorConvertible is declared by failure types that can absorb an
// arbitrary error, qualifying them for TryMapInto.
type ErrorConvertible[F any] interface {
	error
	// FromError builds an F from any error value
	FromError(err error) F
}

// Descriptive facets an underlying failure may expose. AnyError probes for
// these when delegating its human-facing text.

type Messenger interface {
	Message() string
}

type Reasoner interface {
	Reason() string
}

type Helper interface {
	HelpText() string
}

type RecoverySuggester interface {
	RecoverySuggestion() string
}
