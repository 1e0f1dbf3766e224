// Package middleware provides the HTTP middleware shared by all routes.
package middleware

import (
	"log"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Logger logs one line per request
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Printf("%s %s %d %dB %s", r.Method, r.URL.Path, status, ww.BytesWritten(), time.Since(start).Round(time.Microsecond))
	})
}

// Recovery turns a handler panic into a 500 response. http.ErrAbortHandler
// is re-raised so the server can abort the connection.
func Recovery(next http.Handler) http.Handler {
	return chimw.Recoverer(next)
}
