package gpc

import "net/http"

// Middleware stamps the Sec-GPC header on every response while the signal
// is enabled, so clients can observe the advertised preference.
func Middleware(state *State) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if state.Enabled() {
				w.Header().Set(HeaderName, HeaderValue)
			}

			next.ServeHTTP(w, r)
		})
	}
}
