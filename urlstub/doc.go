/*
Package urlstub intercepts outgoing requests in tests and replays a canned
outcome instead of performing network I/O.

A Transport is an http.RoundTripper holding a chain of registered Protocols.
For every request it offers each Protocol, most recently registered first, the
chance to claim it. The claiming Protocol loads the request by reporting data,
a response, a failure and finally completion to a Client.

Stub is a Protocol that claims every request and replays one Outcome: the
payload, then the response, then the failure, each only when configured, and
always the finish signal. A Stub with no Outcome configured finishes without
delivering anything, which surfaces to net/http callers as ErrNoResponse.

Quick start

	func TestFetch(t *testing.T) {
	  s := urlstub.Start(t, urlstub.Config{})
	  s.Stub(testhelpers.InvalidJSONData(), testhelpers.Any200HTTPURLResponse(), nil)

	  _, err := NewFetcher(s.Session()).Fetch(ctx)
	  // assert on err
	}

Start registers the Stub with its Transport and unregisters it when the test
ends. Session returns an *http.Client whose transport uses only the Stub, so
it works whether or not the Stub is registered.

Stubs also answer Tarmac waPC host calls for the httpclient capability through
HostCall, so WebAssembly function clients can be tested with the same Outcome.

A Stub is meant to be owned by one test at a time. Configuring a payload and a
failure together delivers both; configure only what the scenario needs.
*/
package urlstub
