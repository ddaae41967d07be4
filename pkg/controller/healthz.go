package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/jx"
	"go.uber.org/zap"

	"pylintd/pkg/logger"
)

// HealthCheck reports whether one dependency is usable.
type HealthCheck func(ctx context.Context) error

// Healthz answers 200 when every named check passes within timeout and 503
// otherwise. The body lists the state of each check.
func Healthz(timeout time.Duration, checks map[string]HealthCheck) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		status := http.StatusOK
		e := jx.GetEncoder()
		defer jx.PutEncoder(e)

		e.ObjStart()
		for name, check := range checks {
			e.FieldStart(name)
			if err := check(ctx); err != nil {
				logger.Warn(ctx, "health check failed", zap.String("check", name), zap.Error(err))
				status = http.StatusServiceUnavailable
				e.Str("down")

				continue
			}
			e.Str("up")
		}
		e.ObjEnd()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(e.Bytes())
	})
}
