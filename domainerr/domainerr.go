package domainerr

import (
	"errors"
	"fmt"
	"reflect"
)

// DefaultCode is the code given to errors that do not carry one.
const DefaultCode = 1

// Coded is implemented by errors that carry their own domain and code.
type Coded interface {
	error

	// ErrorDomain returns the domain the error belongs to.
	ErrorDomain() string

	// ErrorCode returns the error code within the domain.
	ErrorCode() int
}

// Error is the generic domain and code representation of an error.
type Error struct {
	// Domain groups related error codes, often a package or bundle name.
	Domain string

	// Code identifies the error within Domain.
	Code int

	// Description is the human readable message returned by Error().
	Description string

	// cause is the error this value was derived from, if any.
	cause error
}

// Ensure Error satisfies Coded at compile time.
var _ Coded = (*Error)(nil)

// New creates an Error with the given domain, code and description.
func New(domain string, code int, description string) *Error {
	return &Error{Domain: domain, Code: code, Description: description}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Description != "" {
		return e.Description
	}
	return fmt.Sprintf("%s error %d", e.Domain, e.Code)
}

// ErrorDomain returns e.Domain, or "" for a nil e.
func (e *Error) ErrorDomain() string {
	if e == nil {
		return ""
	}
	return e.Domain
}

// ErrorCode returns e.Code, or 0 for a nil e.
func (e *Error) ErrorCode() int {
	if e == nil {
		return 0
	}
	return e.Code
}

// Unwrap returns the error e was derived from by From.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is reports whether target is a Coded error with the same domain and code.
func (e *Error) Is(target error) bool {
	var c Coded
	if e == nil || !errors.As(target, &c) {
		return false
	}
	return c.ErrorDomain() == e.Domain && c.ErrorCode() == e.Code
}

// Equal reports whether e and other have the same domain and code.
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Domain == other.Domain && e.Code == other.Code
}

// From coerces err into its domain and code representation. It returns nil
// when err is nil.
//
// An *Error found in the chain is returned as a copy. Otherwise the first
// Coded error in the chain supplies the domain and code. Any other error uses
// its type name and DefaultCode, as does a nil *Error held in a non-nil err.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var de *Error
	if errors.As(err, &de) {
		if de == nil {
			return &Error{
				Domain:      TypeDomain(de),
				Code:        DefaultCode,
				Description: err.Error(),
				cause:       err,
			}
		}
		out := *de
		return &out
	}

	var c Coded
	if errors.As(err, &c) {
		return &Error{
			Domain:      c.ErrorDomain(),
			Code:        c.ErrorCode(),
			Description: err.Error(),
			cause:       err,
		}
	}

	return &Error{
		Domain:      TypeDomain(err),
		Code:        DefaultCode,
		Description: err.Error(),
		cause:       err,
	}
}

// TypeDomain returns the fully qualified type name of err, used as the domain
// for errors that do not provide one. Pointer types are named by their element.
func TypeDomain(err error) string {
	if err == nil {
		return ""
	}
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
