package middleware

import (
	"net/http"
	"strings"
)

const defaultAllowedMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"

// CORS allows every origin, method and header, with credentials. The
// caller's Origin is echoed back since browsers reject "*" together with
// credentials. Preflight requests are answered here with 204.
func CORS() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := w.Header()
			origin := r.Header.Get("Origin")

			if origin != "" {
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Credentials", "true")
				header.Add("Vary", "Origin")
			} else {
				header.Set("Access-Control-Allow-Origin", "*")
			}

			if isPreflight(r) {
				methods := r.Header.Get("Access-Control-Request-Method")
				if methods == "" {
					methods = defaultAllowedMethods
				}
				header.Set("Access-Control-Allow-Methods", methods)

				if headers := r.Header.Get("Access-Control-Request-Headers"); headers != "" {
					header.Set("Access-Control-Allow-Headers", headers)
				}
				header.Set("Access-Control-Max-Age", "600")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions &&
		strings.TrimSpace(r.Header.Get("Access-Control-Request-Method")) != ""
}
