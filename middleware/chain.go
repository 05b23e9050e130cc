// ABOUTME: Middleware composition for route registration
// ABOUTME: Wraps a handler so the first listed middleware sees requests first

package middleware

import "net/http"

// Middleware wraps one http.HandlerFunc in another.
type Middleware func(http.HandlerFunc) http.HandlerFunc

// Chain wraps h in the given middleware, outermost first:
// Chain(h, logging, cors, metrics) serves as logging(cors(metrics(h))).
func Chain(h http.HandlerFunc, middleware ...Middleware) http.HandlerFunc {
	wrapped := h
	for i := len(middleware) - 1; i >= 0; i-- {
		wrapped = middleware[i](wrapped)
	}
	return wrapped
}
