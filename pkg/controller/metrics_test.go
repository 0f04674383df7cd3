package controller_test

import (
	"context"
	"marketplace/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestWithMetrics_RecordsRoute(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	mw, err := controller.WithMetrics(provider.Meter("test"))
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /v1/incidences/{id}/claim", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	rec := httptest.NewRecorder()
	mw(mux).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/incidences/1/claim", nil))
	require.Equal(t, http.StatusConflict, rec.Result().StatusCode)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)

	m := rm.ScopeMetrics[0].Metrics[0]
	require.Equal(t, "http.server.request.duration", m.Name)
	hist, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	require.Equal(t, uint64(1), hist.DataPoints[0].Count)

	route, ok := hist.DataPoints[0].Attributes.Value(attribute.Key("http.route"))
	require.True(t, ok)
	require.Equal(t, "PUT /v1/incidences/{id}/claim", route.AsString())
	status, _ := hist.DataPoints[0].Attributes.Value(attribute.Key("http.response.status_code"))
	require.Equal(t, "409", status.AsString())
}

func TestWithMetrics_RouteFuncOverridesPattern(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	mw, err := controller.WithMetrics(provider.Meter("test"),
		func(r *http.Request) (string, bool) { return "", false },
		func(r *http.Request) (string, bool) { return r.Method + " /v1/incidences/{id}/claim", true },
	)
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.Handle("/v1/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	mw(mux).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/incidences/1/claim", nil))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	hist, ok := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	route, ok := hist.DataPoints[0].Attributes.Value(attribute.Key("http.route"))
	require.True(t, ok)
	require.Equal(t, "POST /v1/incidences/{id}/claim", route.AsString())
}
