package gpc

import "net/http"

// HeaderName is the Global Privacy Control request header.
const HeaderName = "Sec-GPC"

// HeaderValue is the only defined value for the header.
const HeaderValue = "1"

// Transport wraps an http.RoundTripper and attaches the Sec-GPC header to
// every outbound request while the signal is enabled. Used for any traffic
// the tool sends toward broker portals.
type Transport struct {
	// Base is the underlying round tripper; http.DefaultTransport when nil
	Base http.RoundTripper
	// State gates the header
	State *State
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if t.State != nil && t.State.Enabled() {
		// Clone before mutating; RoundTrippers must not modify the caller's request.
		req = req.Clone(req.Context())
		req.Header.Set(HeaderName, HeaderValue)
	}

	return base.RoundTrip(req)
}
