package testhelpers

import "errors"

var (
	// ErrInvalidFixture indicates a fixture literal could not be constructed.
	// Request fixtures panic with an error wrapping it.
	ErrInvalidFixture = errors.New("fixture could not be constructed")
)
