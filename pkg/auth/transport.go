package auth

import (
	"net/http"
)

// Transport applies a Handler to every outgoing request
type Transport struct {
	base    http.RoundTripper
	handler Handler
}

// NewTransport wraps base (http.DefaultTransport when nil)
func NewTransport(base http.RoundTripper, handler Handler) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{
		base:    base,
		handler: handler,
	}
}

// RoundTrip implements http.RoundTripper
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request
	reqCopy := req.Clone(req.Context())

	if err := t.handler.ApplyAuth(reqCopy); err != nil {
		if req.Body != nil {
			req.Body.Close()
		}
		return nil, err
	}

	return t.base.RoundTrip(reqCopy)
}
