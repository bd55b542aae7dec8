package expect

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/tarmac-project/testhelpers/domainerr"
)

// Expectation describes the failure an expression is expected to return.
// Build one with Exact, OfType, DomainCode or Any.
type Expectation interface {
	// noError is the message reported when the expression succeeds.
	noError() string

	// mismatches returns one message per way err violates the expectation.
	mismatches(err error) []string
}

var codedType = reflect.TypeFor[domainerr.Coded]()

// exact expects an error of type E equal to want.
type exact[E comparable] struct {
	want E
}

// Exact expects the failure to contain an error of type E that equals want.
// Equality uses E's Equal(E) bool method when present and deep equality
// otherwise.
// When E is an interface type, such as error, or implements domainerr.Coded,
// equality means the same domain and code and Exact behaves like Coded.
func Exact[E interface {
	error
	comparable
}](want E) Expectation {
	t := reflect.TypeFor[E]()
	if t.Kind() == reflect.Interface || t.Implements(codedType) {
		return Coded(want)
	}
	return exact[E]{want: want}
}

func (e exact[E]) noError() string {
	return fmt.Sprintf("No error thrown. Expecting %v", e.want)
}

func (e exact[E]) mismatches(err error) []string {
	var actual E
	if !errors.As(err, &actual) {
		return []string{fmt.Sprintf("Throws unexpected error type %q. Expecting %q.", describe(err), typeName[E]())}
	}
	if !equal(actual, e.want) {
		return []string{fmt.Sprintf("Throws unexpected error %q. Expecting %q.", fmt.Sprint(actual), fmt.Sprint(e.want))}
	}
	return nil
}

// equal reports whether actual and want are the same error value. An
// Equal(E) bool method decides when E has one; otherwise values are compared
// deeply, so pointers to identical structs are equal.
func equal[E any](actual, want E) bool {
	if v := reflect.ValueOf(&actual).Elem(); v.Kind() == reflect.Pointer && v.IsNil() {
		return reflect.DeepEqual(actual, want)
	}
	if eq, ok := any(actual).(interface{ Equal(E) bool }); ok {
		return eq.Equal(want)
	}
	return reflect.DeepEqual(actual, want)
}

// ofType expects an error of type E.
type ofType[E error] struct{}

// OfType expects the failure to contain an error of type E. The value is not
// inspected.
func OfType[E error]() Expectation {
	return ofType[E]{}
}

func (ofType[E]) noError() string {
	return "Expression did not throw an error"
}

func (ofType[E]) mismatches(err error) []string {
	var actual E
	if errors.As(err, &actual) {
		return nil
	}
	return []string{fmt.Sprintf("Throws unexpected error type %s. Expected type %s", describe(err), typeName[E]())}
}

// domainCode expects an error whose domainerr view matches.
type domainCode struct {
	domain string
	code   int
	want   string
}

// DomainCode expects the failure's domain and code to match.
func DomainCode(domain string, code int) Expectation {
	return domainCode{
		domain: domain,
		code:   code,
		want:   fmt.Sprintf("%s (%d)", domain, code),
	}
}

// Coded expects the failure to have the same domain and code as want, as
// reported by domainerr.From.
func Coded(want error) Expectation {
	de := domainerr.From(want)
	if de == nil {
		de = &domainerr.Error{}
	}
	return domainCode{domain: de.Domain, code: de.Code, want: fmt.Sprint(want)}
}

func (d domainCode) noError() string {
	return fmt.Sprintf("No error thrown. Expecting %s", d.want)
}

func (d domainCode) mismatches(err error) []string {
	actual := domainerr.From(err)

	var out []string
	if actual.Domain != d.domain {
		out = append(out, fmt.Sprintf("Throws unexpected error domain %q. Expecting %q.", actual.Domain, d.domain))
	}
	if actual.Code != d.code {
		out = append(out, fmt.Sprintf("Throws unexpected error code \"%d\". Expecting \"%d\".", actual.Code, d.code))
	}
	return out
}

// anyError expects any failure.
type anyError struct{}

// Any expects any failure at all.
func Any() Expectation {
	return anyError{}
}

func (anyError) noError() string           { return "Expression did not throw an error" }
func (anyError) mismatches(error) []string { return nil }

// typeName returns the qualified name of E.
func typeName[E any]() string {
	return reflect.TypeFor[E]().String()
}

// describe names the type and value of err.
func describe(err error) string {
	return fmt.Sprintf("%T(%v)", err, err)
}
