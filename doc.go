/*
Package testhelpers provides ready-made values for tests that exercise
networking code.

The fixtures are deterministic: every call returns a value with the same shape,
though not the same pointer. AnyURL, AnyURLRequest, AnyURLResponse and
Any200HTTPURLResponse build placeholder HTTP values; InvalidJSONData returns a
payload that never decodes as JSON; AnyError, AnyDomainError and MakeError
return generic errors with a domain and code.

Related packages:

  - urlstub intercepts outgoing requests and replays a canned outcome.
  - expect asserts that an expression fails with an expected error.
  - domainerr reduces any error to a domain and code pair.
*/
package testhelpers
