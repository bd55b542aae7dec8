package urlstub

import (
	"net/http"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/tarmac-project/testhelpers/logging"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

// HostCall is the waPC host function signature.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Config controls construction of a Stub.
type Config struct {
	// Transport is the chain the Stub registers with. Defaults to
	// DefaultTransport.
	Transport *Transport

	// Logger receives interception events. Defaults to a no-op logger.
	Logger *zerolog.Logger

	// Namespace is the waPC namespace HostCall intercepts. Empty accepts any
	// namespace.
	Namespace string

	// HostCall handles host calls the Stub does not intercept. Defaults to
	// wapc.HostCall.
	HostCall HostCall
}

// Stub is a Protocol that claims every request and replays the configured
// Outcome.
type Stub struct {
	mu sync.RWMutex

	transport *Transport
	log       *zerolog.Logger
	namespace string
	hostCall  HostCall

	// outcome is nil until Stub or StubOutcome is called.
	outcome *Outcome

	// session is an HTTP client whose transport uses only this Stub.
	session *http.Client

	intercepting bool
}

// Ensure Stub always satisfies Protocol at compile time.
var _ Protocol = (*Stub)(nil)

// New creates a Stub that is not yet intercepting requests.
func New(config Config) *Stub {
	s := &Stub{
		transport: config.Transport,
		log:       logging.Or(config.Logger),
		namespace: config.Namespace,
		hostCall:  wapc.HostCall,
	}
	if s.transport == nil {
		s.transport = DefaultTransport
	}
	if config.HostCall != nil {
		s.hostCall = config.HostCall
	}
	return s
}

// Start creates a Stub, starts intercepting requests and stops when t and its
// subtests complete. Without a configured Logger, events go to t's log.
func Start(t testing.TB, config Config) *Stub {
	t.Helper()
	if config.Logger == nil {
		config.Logger = logging.ForTest(t, "urlstub")
	}
	s := New(config)
	s.StartInterceptingRequests()
	t.Cleanup(s.StopInterceptingRequests)
	return s
}

// Stub configures the Outcome replayed for every intercepted request,
// replacing any previous one, and creates a new Session.
func (s *Stub) Stub(data []byte, response *http.Response, err error) {
	s.StubOutcome(Outcome{Data: data, Response: response, Err: err})
}

// StubOutcome is Stub taking an Outcome.
func (s *Stub) StubOutcome(o Outcome) {
	t := NewTransport(nil)
	t.Register(s)

	s.mu.Lock()
	s.outcome = &o
	s.session = &http.Client{Transport: t}
	intercepting := s.intercepting
	s.mu.Unlock()

	if !intercepting {
		s.log.Warn().Msg("outcome configured while not intercepting requests")
	}
	s.log.Debug().
		Bool("data", o.Data != nil).
		Bool("response", o.Response != nil).
		Bool("error", o.Err != nil).
		Msg("outcome configured")
}

// Outcome returns the configured Outcome, if any.
func (s *Stub) Outcome() (Outcome, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.outcome == nil {
		return Outcome{}, false
	}
	return *s.outcome, true
}

// Session returns an HTTP client that sends every request to this Stub, or
// nil until an Outcome is configured.
func (s *Stub) Session() *http.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// StartInterceptingRequests registers the Stub with its Transport. Calling it
// twice without stopping in between registers the Stub twice.
func (s *Stub) StartInterceptingRequests() {
	s.transport.Register(s)

	s.mu.Lock()
	s.intercepting = true
	s.mu.Unlock()

	s.log.Debug().Msg("intercepting requests")
}

// StopInterceptingRequests unregisters the Stub and clears the Outcome and
// Session.
func (s *Stub) StopInterceptingRequests() {
	s.transport.Unregister(s)

	s.mu.Lock()
	s.intercepting = false
	s.outcome = nil
	s.session = nil
	s.mu.Unlock()

	s.log.Debug().Msg("stopped intercepting requests")
}

// Intercepting reports whether the Stub is registered with its Transport.
func (s *Stub) Intercepting() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.intercepting
}

// CanInit claims every request.
func (s *Stub) CanInit(*http.Request) bool { return true }

// CanonicalRequest returns req unchanged.
func (s *Stub) CanonicalRequest(req *http.Request) *http.Request { return req }

// StartLoading replays the Outcome to client: the payload, the response with
// CacheNotAllowed, and the failure, each only when configured, followed by
// DidFinishLoading.
func (s *Stub) StartLoading(req *http.Request, client Client) {
	o, _ := s.Outcome()

	ev := s.log.Debug()
	if req != nil && req.URL != nil {
		ev = ev.Str("method", req.Method).Str("url", req.URL.String())
	}
	ev.Bool("data", o.Data != nil).
		Bool("response", o.Response != nil).
		Bool("error", o.Err != nil).
		Msg("intercepted request")

	if o.Data != nil {
		client.DidLoad(o.Data)
	}

	if o.Response != nil {
		client.DidReceiveResponse(o.Response, CacheNotAllowed)
	}

	if o.Err != nil {
		client.DidFail(o.Err)
	}

	client.DidFinishLoading()
}

// StopLoading does nothing; replays complete synchronously.
func (s *Stub) StopLoading(*http.Request) {}
