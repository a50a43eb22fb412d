package accesslog

import (
	"net/http"
	"time"
)

// statusRecorder captures the status code written by the wrapped handler.
// A handler that never calls WriteHeader implies 200.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware wraps next so every completed request is access-logged once.
func Middleware(a *Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		a.Log(Exchange{
			Method:     r.Method,
			Path:       r.URL.RequestURI(),
			Scheme:     scheme,
			ProtoMajor: r.ProtoMajor,
			ProtoMinor: r.ProtoMinor,
			Status:     rec.status,
			Reason:     http.StatusText(rec.status),
			Elapsed:    time.Since(start),
		})
	})
}
