package urlstub

import (
	"net/http"
)

// CachePolicy tells a Client whether a delivered response may be cached.
type CachePolicy int

const (
	// CacheAllowed permits any cache to store the response.
	CacheAllowed CachePolicy = iota

	// CacheAllowedInMemoryOnly permits in-memory caching only.
	CacheAllowedInMemoryOnly

	// CacheNotAllowed forbids caching the response.
	CacheNotAllowed
)

func (p CachePolicy) String() string {
	switch p {
	case CacheAllowed:
		return "allowed"
	case CacheAllowedInMemoryOnly:
		return "allowed-in-memory-only"
	case CacheNotAllowed:
		return "not-allowed"
	default:
		return "unknown"
	}
}

// Client receives the events of a single request load from a Protocol.
type Client interface {
	// DidLoad delivers a chunk of response payload.
	DidLoad(data []byte)

	// DidReceiveResponse delivers response metadata.
	DidReceiveResponse(resp *http.Response, policy CachePolicy)

	// DidFail reports that loading failed.
	DidFail(err error)

	// DidFinishLoading signals that no further events will be delivered.
	DidFinishLoading()
}

// Protocol handles the requests a Transport hands to it.
type Protocol interface {
	// CanInit reports whether the Protocol handles req.
	CanInit(req *http.Request) bool

	// CanonicalRequest returns the normalized form of req used for loading.
	CanonicalRequest(req *http.Request) *http.Request

	// StartLoading loads req and reports progress to client. Events may be
	// delivered before StartLoading returns or later from another goroutine,
	// but DidFinishLoading must be the last.
	StartLoading(req *http.Request, client Client)

	// StopLoading cancels loading of req.
	StopLoading(req *http.Request)
}
