package controller

import (
	"fmt"
	"marketplace/pkg/logger"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

// WithRecover returns a middleware that recovers panics from next, reports
// them to Sentry with the request attached and answers 500 if nothing was
// written yet. Without a configured Sentry client the report is a no-op.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub := sentry.CurrentHub().Clone()
		hub.Scope().SetRequest(r)
		ctx := sentry.SetHubOnContext(r.Context(), hub)
		rec := recorder(w)

		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler { //nolint: errorlint
				panic(v)
			}

			hub.RecoverWithContext(ctx, v)
			hub.Flush(2 * time.Second)
			logger.Error(ctx, "panic in http handler",
				zap.String("panic", fmt.Sprint(v)),
				zap.Stack("stack"))

			if !rec.wroteHeader {
				http.Error(rec, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(rec, r.WithContext(ctx))
	})
}
