package urlstub

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	proto "github.com/tarmac-project/protobuf-go/sdk/http"
	pb "google.golang.org/protobuf/proto"
)

const (
	// capabilityHTTPClient is the Tarmac capability carrying HTTP requests.
	capabilityHTTPClient = "httpclient"

	// functionCall is the httpclient function performing a request.
	functionCall = "call"

	// hostStatusOK is the host status reported when a response is replayed.
	hostStatusOK = int32(200)
)

// HostCall answers Tarmac httpclient host calls with the configured Outcome
// while the Stub is intercepting, so it can be injected wherever a waPC host
// function is expected.
//
// A replayed failure is returned as the host call error. The replayed payload
// becomes the response body, and the host status is only set when a response
// is configured; a response without a status is what the host sends when the
// request produced nothing. Calls for other capabilities or functions, and all
// calls while not intercepting, go to the configured passthrough host function.
func (s *Stub) HostCall(namespace, capability, function string, payload []byte) ([]byte, error) {
	if !s.Intercepting() || capability != capabilityHTTPClient || function != functionCall {
		return s.hostCall(namespace, capability, function, payload)
	}

	if s.namespace != "" && s.namespace != namespace {
		return nil, fmt.Errorf(
			"%w: expected namespace %s, got %s",
			ErrUnexpectedNamespace,
			s.namespace,
			namespace,
		)
	}

	var in proto.HTTPClient
	if err := pb.Unmarshal(payload, &in); err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}

	req := s.CanonicalRequest(hostRequest(&in))
	l := newLoad()
	s.StartLoading(req, l)
	<-l.done

	data, resp, err := l.snapshot()
	if err != nil {
		return nil, err
	}

	out := &proto.HTTPClientResponse{
		Headers: make(map[string]*proto.Header),
		Body:    data,
	}
	if resp != nil {
		out.Status = &sdkproto.Status{Status: "OK", Code: hostStatusOK}
		out.Code = int32(resp.StatusCode)
		for name, values := range resp.Header {
			out.Headers[name] = &proto.Header{Values: values}
		}
	}

	b, err := pb.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal host response: %w", err)
	}
	return b, nil
}

// hostRequest converts a decoded httpclient payload into an *http.Request. An
// unparsable URL yields a request with an empty URL.
func hostRequest(in *proto.HTTPClient) *http.Request {
	u, err := url.Parse(in.GetUrl())
	if err != nil {
		u = &url.URL{}
	}

	req := &http.Request{
		Method:     in.GetMethod(),
		URL:        u,
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     make(http.Header),
		Body:       http.NoBody,
		Host:       u.Host,
	}
	for name, h := range in.GetHeaders() {
		req.Header[name] = h.GetValues()
	}
	if body := in.GetBody(); len(body) > 0 {
		req.Body = io.NopCloser(bytes.NewReader(body))
		req.ContentLength = int64(len(body))
	}
	return req
}
