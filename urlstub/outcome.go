package urlstub

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/tarmac-project/testhelpers/domainerr"
	"gopkg.in/yaml.v3"
)

// Outcome is the canned result a Stub replays for every request. Each field
// is optional and delivered independently.
type Outcome struct {
	// Data is delivered as the loaded payload.
	Data []byte

	// Response is delivered as the response metadata.
	Response *http.Response

	// Err is delivered as the loading failure.
	Err error
}

// outcomeDocument is the YAML form of an Outcome.
type outcomeDocument struct {
	Data     *string           `yaml:"data"`
	Response *responseDocument `yaml:"response"`
	Error    *errorDocument    `yaml:"error"`
}

type responseDocument struct {
	Status        int                 `yaml:"status"`
	Headers       map[string][]string `yaml:"headers"`
	ContentLength int64               `yaml:"content_length"`
}

type errorDocument struct {
	Domain      string `yaml:"domain"`
	Code        int    `yaml:"code"`
	Description string `yaml:"description"`
}

// LoadOutcome reads an Outcome from a YAML document of the form:
//
//	data: "{bad json}"
//	response:
//	  status: 200
//	  headers:
//	    Content-Type: [application/json]
//	  content_length: 10
//	error:
//	  domain: com.example
//	  code: -1
//	  description: connection reset
//
// Every section is optional. A response with status 0 describes a non-HTTP
// response. The error section becomes a *domainerr.Error.
func LoadOutcome(r io.Reader) (Outcome, error) {
	var doc outcomeDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Outcome{}, errors.Join(ErrInvalidOutcome, err)
	}

	var o Outcome
	if doc.Data != nil {
		o.Data = []byte(*doc.Data)
	}

	if rd := doc.Response; rd != nil {
		if rd.Status < 0 || rd.Status > 999 {
			return Outcome{}, fmt.Errorf("%w: status %d out of range", ErrInvalidOutcome, rd.Status)
		}
		resp := &http.Response{
			StatusCode:    rd.Status,
			Header:        make(http.Header),
			Body:          http.NoBody,
			ContentLength: rd.ContentLength,
		}
		if rd.Status != 0 {
			resp.Status = fmt.Sprintf("%d %s", rd.Status, http.StatusText(rd.Status))
			resp.Proto = "HTTP/1.1"
			resp.ProtoMajor, resp.ProtoMinor = 1, 1
		}
		for k, values := range rd.Headers {
			for _, v := range values {
				resp.Header.Add(k, v)
			}
		}
		o.Response = resp
	}

	if ed := doc.Error; ed != nil {
		o.Err = domainerr.New(ed.Domain, ed.Code, ed.Description)
	}

	return o, nil
}

// LoadOutcomeFile reads an Outcome from the YAML file at path.
func LoadOutcomeFile(path string) (Outcome, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", ErrInvalidOutcome, err)
	}
	return LoadOutcome(bytes.NewReader(b))
}
