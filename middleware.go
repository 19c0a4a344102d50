package ipfilter

import (
	"net/http"
)

// Middleware gates next behind the filter, responding 403 Forbidden on Deny.
//
// The returned handler is compatible with any net/http router that accepts
// func(http.Handler) http.Handler middleware.
func (f *Filter) Middleware(next http.Handler) http.Handler {
	return f.MiddlewareWithDenyHandler(next, nil)
}

// MiddlewareWithDenyHandler gates next behind the filter and delegates denied
// requests to denied. A nil denied handler responds with a plain 403.
func (f *Filter) MiddlewareWithDenyHandler(next, denied http.Handler) http.Handler {
	if denied == nil {
		denied = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		})
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if decision := f.Decide(r); !decision.Allowed() {
			denied.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
