package testhelpers

import (
	"fmt"
	"net/http"
	"net/url"
	"runtime/debug"
	"sync"

	"github.com/madflojo/testlazy/things/testurl"
	"github.com/tarmac-project/testhelpers/domainerr"
)

const (
	// anyURLString is the placeholder URL shared by every URL fixture.
	anyURLString = "http://any-url.com"

	// anyErrorDescription is the description carried by AnyError.
	anyErrorDescription = "anyError"

	// invalidJSON is text that never parses as JSON.
	invalidJSON = "Definitely Not JSON!"

	// fixtureErrorCode is the code given to errors built by MakeError.
	fixtureErrorCode = -1
)

// BundleIdentifier returns the module path of the running binary, or an empty
// string when build information is unavailable. It is the domain of errors
// built by MakeError.
var BundleIdentifier = sync.OnceValue(func() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	if bi.Main.Path != "" {
		return bi.Main.Path
	}
	return bi.Path
})

// AnyURL returns a valid placeholder URL. It panics if the literal does not
// parse.
func AnyURL() *url.URL {
	return testurl.MustParse(anyURLString)
}

// AnyURLRequest returns a GET request for AnyURL.
func AnyURLRequest() *http.Request {
	req, err := http.NewRequest(http.MethodGet, AnyURL().String(), nil)
	if err != nil {
		panic(fmt.Errorf("%w: request: %w", ErrInvalidFixture, err))
	}
	return req
}

// AnyURLResponse returns a generic, non-HTTP response for AnyURL. It has no
// status, a content length of 1, and neither a MIME type nor an encoding.
func AnyURLResponse() *http.Response {
	return &http.Response{
		Header:        make(http.Header),
		Body:          http.NoBody,
		ContentLength: 1,
		Request:       AnyURLRequest(),
	}
}

// Any200HTTPURLResponse returns an HTTP 200 response for AnyURL without
// headers.
func Any200HTTPURLResponse() *http.Response {
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", http.StatusOK, http.StatusText(http.StatusOK)),
		StatusCode:    http.StatusOK,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        make(http.Header),
		Body:          http.NoBody,
		ContentLength: -1,
		Request:       AnyURLRequest(),
	}
}

// InvalidJSONData returns a human readable payload that is not valid JSON.
func InvalidJSONData() []byte {
	return []byte(invalidJSON)
}

// AnyError returns a generic error. It is AnyDomainError as an error value.
func AnyError() error {
	return AnyDomainError()
}

// AnyDomainError returns a generic error with a fixed description, the
// BundleIdentifier domain and code -1.
func AnyDomainError() *domainerr.Error {
	return MakeError(anyErrorDescription)
}

// MakeError returns a generic error with the given description, the
// BundleIdentifier domain and code -1.
func MakeError(description string) *domainerr.Error {
	return domainerr.New(BundleIdentifier(), fixtureErrorCode, description)
}
