package di

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNilBuild is returned when a binding or override is installed with a nil
// build function.
var ErrNilBuild = errors.New("di: nil build function")

// ConfigurationError reports invalid assembly-time configuration: a duplicate
// binding registered without Replace, a build function whose product cannot
// satisfy the contract, or missing/malformed process configuration.
//
// Configuration errors are fatal to the operation that produced them; the
// container never retries or defaults around them.
type ConfigurationError struct {
	// Subject is the contract name or configuration key the error is about.
	Subject string

	// Reason is a short human-readable cause.
	Reason string
}

// Error implements the error interface.
func (e ConfigurationError) Error() string {
	// Example: di: configuration error for "api-client": already bound
	return "di: configuration error for " + strconv.Quote(e.Subject) + ": " + e.Reason
}

// UnresolvedDependencyError is returned when Resolve or Override is called
// for a contract that has no binding. This is a programming error in the
// assembly root, never defaulted over.
type UnresolvedDependencyError struct{ Contract string }

// Error implements the error interface.
func (e UnresolvedDependencyError) Error() string {
	// Example: di: contract "api-client" has no binding
	return "di: contract " + strconv.Quote(e.Contract) + " has no binding"
}

// CircularDependencyError is returned when transitive resolution revisits a
// contract already being constructed on the current resolution path.
//
// Path holds the contract names along that path, ending at the revisited
// contract, so the cycle is readable directly from the message.
type CircularDependencyError struct{ Path []string }

// Error implements the error interface.
func (e CircularDependencyError) Error() string {
	// Example: di: circular dependency: "a" -> "b" -> "a"
	quoted := make([]string, len(e.Path))
	for i, name := range e.Path {
		quoted[i] = strconv.Quote(name)
	}
	return "di: circular dependency: " + strings.Join(quoted, " -> ")
}

// WrongProductError is returned by the typed Resolve helpers when a resolved
// instance is not of the requested type. It points at a mismatch between the
// type the caller asked for and the type the binding actually produces.
type WrongProductError struct {
	// Contract is the contract name that was resolved.
	Contract string

	// GotType is reflect.TypeOf(instance).String() for the resolved value.
	GotType string
}

// Error implements the error interface.
func (e WrongProductError) Error() string {
	// Example: di: contract "api-client" resolved to wrong type (*examples.FakeAPIClient)
	return "di: contract " + strconv.Quote(e.Contract) + " resolved to wrong type (" + e.GotType + ")"
}
