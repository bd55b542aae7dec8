package expect

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

// Reporter receives expectation violations. *testing.T satisfies it.
type Reporter interface {
	Errorf(format string, args ...any)
}

// tHelper is implemented by reporters that can mark helper frames.
type tHelper interface {
	Helper()
}

// Expression is the operation expected to fail.
type Expression func() error

// Option customizes how violations are reported.
type Option func(*options)

type options struct {
	file string
	line int
}

// At attributes violations to file and line instead of only the call site.
func At(file string, line int) Option {
	return func(o *options) {
		o.file = file
		o.line = line
	}
}

// messages returns the extra messages passed to assert.Fail.
func (o options) messages() []any {
	if o.file == "" {
		return nil
	}
	return []any{fmt.Sprintf("at %s:%d", o.file, o.line)}
}

// Error runs expr and reports every way its failure violates want. A nil
// result is reported once.
func Error(t Reporter, expr Expression, want Expectation, opts ...Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	err := expr()
	if err == nil {
		return assert.Fail(t, want.noError(), o.messages()...)
	}

	ok := true
	for _, msg := range want.mismatches(err) {
		ok = assert.Fail(t, msg, o.messages()...)
	}
	return ok
}

// Equal expects expr to fail with an error of want's type equal to want.
func Equal[E interface {
	error
	comparable
}](t Reporter, expr Expression, want E, opts ...Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Error(t, expr, Exact(want), opts...)
}

// ErrorOfType expects expr to fail with an error of type E.
func ErrorOfType[E error](t Reporter, expr Expression, opts ...Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Error(t, expr, OfType[E](), opts...)
}

// CodedError expects expr to fail with an error whose domain and code match
// want's.
func CodedError(t Reporter, expr Expression, want error, opts ...Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Error(t, expr, Coded(want), opts...)
}

// ErrorValue is Equal for a want held as a plain error value. Equality of
// such values means the same domain and code.
func ErrorValue(t Reporter, expr Expression, want error, opts ...Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Equal(t, expr, want, opts...)
}

// Thrown expects expr to fail with any error.
func Thrown(t Reporter, expr Expression, opts ...Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Error(t, expr, Any(), opts...)
}

// Value adapts an expression that returns a result. The result is discarded.
func Value[T any](fn func() (T, error)) Expression {
	return func() error {
		_, err := fn()
		return err
	}
}
