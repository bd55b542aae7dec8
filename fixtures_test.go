package testhelpers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/tarmac-project/testhelpers/domainerr"
)

func TestURLFixtures(t *testing.T) {
	t.Run("AnyURL", func(t *testing.T) {
		u := AnyURL()
		if u.String() != "http://any-url.com" {
			t.Fatalf("expected http://any-url.com, got %s", u)
		}
		if u == AnyURL() {
			t.Errorf("expected a new URL on every call")
		}
	})

	t.Run("AnyURLRequest", func(t *testing.T) {
		req := AnyURLRequest()
		if req.URL.String() != AnyURL().String() {
			t.Errorf("expected request URL %s, got %s", AnyURL(), req.URL)
		}
		if req.Method != http.MethodGet {
			t.Errorf("expected method GET, got %s", req.Method)
		}
	})

	t.Run("AnyURLResponse", func(t *testing.T) {
		resp := AnyURLResponse()
		if resp.StatusCode != 0 {
			t.Errorf("expected no status code, got %d", resp.StatusCode)
		}
		if resp.ContentLength != 1 {
			t.Errorf("expected content length 1, got %d", resp.ContentLength)
		}
		if ct := resp.Header.Get("Content-Type"); ct != "" {
			t.Errorf("expected no MIME type, got %q", ct)
		}
		if resp.Request.URL.String() != AnyURL().String() {
			t.Errorf("expected response URL %s, got %s", AnyURL(), resp.Request.URL)
		}
	})

	t.Run("Any200HTTPURLResponse", func(t *testing.T) {
		resp := Any200HTTPURLResponse()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected status 200, got %d", resp.StatusCode)
		}
		if resp.Status != "200 OK" {
			t.Errorf("expected status text 200 OK, got %q", resp.Status)
		}
		if len(resp.Header) != 0 {
			t.Errorf("expected no headers, got %v", resp.Header)
		}
		if resp.Request.URL.String() != AnyURL().String() {
			t.Errorf("expected response URL %s, got %s", AnyURL(), resp.Request.URL)
		}
	})
}

func TestInvalidJSONData(t *testing.T) {
	data := InvalidJSONData()
	if len(data) == 0 {
		t.Fatalf("expected a payload")
	}
	if json.Valid(data) {
		t.Fatalf("expected %q to be invalid JSON", data)
	}
	var v any
	if err := json.Unmarshal(data, &v); err == nil {
		t.Fatalf("expected unmarshal to fail")
	}
}

func TestErrorFixtures(t *testing.T) {
	tt := []struct {
		name     string
		err      *domainerr.Error
		wantDesc string
	}{
		{"AnyDomainError", AnyDomainError(), "anyError"},
		{"MakeError", MakeError("custom description"), "custom description"},
		{"MakeError Empty Description", MakeError(""), ""},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Domain != BundleIdentifier() {
				t.Errorf("expected domain %q, got %q", BundleIdentifier(), tc.err.Domain)
			}
			if tc.err.Code != -1 {
				t.Errorf("expected code -1, got %d", tc.err.Code)
			}
			if tc.err.Description != tc.wantDesc {
				t.Errorf("expected description %q, got %q", tc.wantDesc, tc.err.Description)
			}
		})
	}

	t.Run("AnyError", func(t *testing.T) {
		err := AnyError()
		if err.Error() != "anyError" {
			t.Errorf("expected description %q, got %q", "anyError", err.Error())
		}
		if !errors.Is(err, AnyDomainError()) {
			t.Errorf("expected AnyError to match AnyDomainError by domain and code")
		}
	})

	t.Run("BundleIdentifier Is Stable", func(t *testing.T) {
		if BundleIdentifier() != BundleIdentifier() {
			t.Errorf("expected a stable bundle identifier")
		}
	})
}
