package controller

import (
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"

	"pylintd/pkg/logger"
)

// WithRecover returns a middleware that logs a panicking handler and answers
// with 500. http.ErrAbortHandler is re-raised so net/http can abort the
// connection as usual.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler { //nolint: errorlint, err113
				panic(p)
			}

			logger.Error(r.Context(), "captured panic in http handler",
				zap.Any("panic", p), zap.ByteString("stack", debug.Stack()))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"INTERNAL","message":"internal error"}`))
		}()

		next.ServeHTTP(w, r)
	})
}
