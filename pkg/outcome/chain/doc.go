// Package chain provides a minimal fluent Chain[T, F] for synchronous
// composition of Outcome[T, F] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose outcome-returning or error-returning functions
// - Map: transform the success value
// - Ensure: trigger side effects without changing the result
// - Recover/RecoverWith: lazy fallbacks for the failure lane
// - Finally: reduce to a concrete value via handlers
//
// Type-changing steps (T to U) live as package functions since Go methods
// cannot introduce type parameters.
package chain
