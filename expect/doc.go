/*
Package expect asserts that an expression fails with an expected error.

Each helper runs the expression, waits for it to return and compares the
failure against an Expectation. Violations are reported through
assert.Fail, so the test is marked as failed and keeps running.

	expect.Equal(t, func() error { return svc.Load(ctx) }, ErrNotFound)
	expect.ErrorOfType[*json.SyntaxError](t, func() error { return decode(testhelpers.InvalidJSONData()) })
	expect.CodedError(t, call, testhelpers.AnyDomainError())
	expect.Thrown(t, call)

Expectations, from strictest to loosest:

  - Exact: the failure has the expected type and is equal to the expected value
    (its Equal method, or deep equality).
  - OfType: the failure has the expected type.
  - DomainCode: the failure's domainerr view has the expected domain and code.
    A domain mismatch and a code mismatch are reported separately.
  - Any: any failure.

An expression that returns nil is always reported as a violation. There is no
timeout; an expression that never returns blocks the test.
*/
package expect
