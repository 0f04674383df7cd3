package controller

import (
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RouteFunc names the route of a request served by a handler the mux only
// knows by its prefix.
type RouteFunc func(r *http.Request) (string, bool)

// WithMetrics returns a middleware that records the duration of each request
// on the http.server.request.duration histogram of meter. Requests are
// labelled by method, route and status code. The route is the first name
// given by routes, else the matched mux pattern.
func WithMetrics(meter metric.Meter, routes ...RouteFunc) (func(http.Handler) http.Handler, error) {
	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of HTTP server requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := recorder(w)

			next.ServeHTTP(rec, r)

			route := r.Pattern
			for _, fn := range routes {
				if name, ok := fn(r); ok {
					route = name

					break
				}
			}
			if route == "" {
				route = "unmatched"
			}
			duration.Record(r.Context(), time.Since(start).Seconds(), metric.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("http.route", route),
				attribute.String("http.response.status_code", strconv.Itoa(rec.status)),
			))
		})
	}, nil
}
