package urlstub

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"slices"
	"sync"
)

// DefaultTransport is the process-wide protocol chain. Requests that no
// registered Protocol claims are sent through http.DefaultTransport.
var DefaultTransport = NewTransport(http.DefaultTransport)

// Transport is an http.RoundTripper that lets registered Protocols claim
// requests before they reach the base RoundTripper.
type Transport struct {
	mu sync.RWMutex

	// protocols holds registered handlers in registration order.
	protocols []Protocol

	// base performs requests no Protocol claims. It may be nil.
	base http.RoundTripper
}

// Ensure Transport always satisfies http.RoundTripper at compile time.
var _ http.RoundTripper = (*Transport)(nil)

// NewTransport creates a Transport that falls back to base. A nil base makes
// unclaimed requests fail with ErrNoProtocol.
func NewTransport(base http.RoundTripper) *Transport {
	return &Transport{base: base}
}

// Register adds p to the chain. It is consulted before every Protocol
// registered earlier.
func (t *Transport) Register(p Protocol) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.protocols = append(t.protocols, p)
}

// Unregister removes every registration of p.
func (t *Transport) Unregister(p Protocol) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.protocols = slices.DeleteFunc(t.protocols, func(q Protocol) bool { return q == p })
}

// Registered reports whether p is in the chain.
func (t *Transport) Registered(p Protocol) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Contains(t.protocols, p)
}

// protocolFor returns the most recently registered Protocol that claims req.
func (t *Transport) protocolFor(req *http.Request) Protocol {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i := len(t.protocols) - 1; i >= 0; i-- {
		if t.protocols[i].CanInit(req) {
			return t.protocols[i]
		}
	}
	return nil
}

// RoundTrip loads req through the claiming Protocol, or the base RoundTripper
// when none claims it.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	p := t.protocolFor(req)
	if p == nil && t.base != nil {
		return t.base.RoundTrip(req)
	}

	// The request body is ours to close once we do not delegate.
	if req.Body != nil {
		defer req.Body.Close()
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNoProtocol, req.Method, req.URL)
	}

	canonical := p.CanonicalRequest(req)
	l := newLoad()
	p.StartLoading(canonical, l)

	select {
	case <-l.done:
	case <-req.Context().Done():
		p.StopLoading(canonical)
		return nil, req.Context().Err()
	}

	return l.response(canonical)
}

// load collects the events of one request load.
type load struct {
	mu       sync.Mutex
	data     bytes.Buffer
	resp     *http.Response
	err      error
	finished bool
	done     chan struct{}
}

// Ensure load always satisfies Client at compile time.
var _ Client = (*load)(nil)

func newLoad() *load {
	return &load{done: make(chan struct{})}
}

func (l *load) DidLoad(data []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.data.Write(data)
}

func (l *load) DidReceiveResponse(resp *http.Response, _ CachePolicy) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resp = resp
}

func (l *load) DidFail(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
}

func (l *load) DidFinishLoading() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.finished {
		return
	}
	l.finished = true
	close(l.done)
}

// snapshot returns the collected payload, response and failure.
func (l *load) snapshot() ([]byte, *http.Response, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return bytes.Clone(l.data.Bytes()), l.resp, l.err
}

// response converts the collected events into a RoundTrip result. A failure
// takes precedence over any payload or response.
func (l *load) response(req *http.Request) (*http.Response, error) {
	data, resp, err := l.snapshot()
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: %s %s", ErrNoResponse, req.Method, req.URL)
	}

	out := *resp
	out.Request = req
	out.Header = resp.Header.Clone()
	if out.Header == nil {
		out.Header = make(http.Header)
	}
	if len(data) > 0 {
		out.Body = io.NopCloser(bytes.NewReader(data))
	} else {
		out.Body = http.NoBody
	}
	out.ContentLength = int64(len(data))
	return &out, nil
}
