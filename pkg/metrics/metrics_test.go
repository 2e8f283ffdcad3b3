package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMiddleware("test")
	require.NoError(t, m.Register(reg))

	router := chi.NewRouter()
	router.Use(m.Handler)
	router.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, id := range []string{"1", "2"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("200", http.MethodGet, "/items/{id}")))
}

func TestMiddleware_RegisterTwiceReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewMiddleware("test")
	require.NoError(t, first.Register(reg))
	second := NewMiddleware("test")
	require.NoError(t, second.Register(reg))

	assert.Same(t, first.requests, second.requests)
	assert.Same(t, first.latency, second.latency)
}

func TestLatencyBuckets_FromEnv(t *testing.T) {
	t.Setenv(EnvChiPrometheusLatencyBuckets, "10, 20,30")
	buckets, err := latencyBuckets()
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20, 30}, buckets)

	t.Setenv(EnvChiPrometheusLatencyBuckets, "ten")
	_, err = latencyBuckets()
	assert.Error(t, err)
}

func TestSimulationMetrics(t *testing.T) {
	before := testutil.ToFloat64(simulationsTotalMetric.WithLabelValues(OutcomeSuccess))
	IncreaseSimulationsTotalMetric(OutcomeSuccess)
	assert.Equal(t, before+1, testutil.ToFloat64(simulationsTotalMetric.WithLabelValues(OutcomeSuccess)))

	exceededBefore := testutil.ToFloat64(laborExceededPointsMetric)
	ObserveSweep(10, 3)
	assert.Equal(t, exceededBefore+3, testutil.ToFloat64(laborExceededPointsMetric))
}
