package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/Next-Level-Advisors/timezone-toolkit/internal/instrumentation"
	"github.com/Next-Level-Advisors/timezone-toolkit/internal/server"
)

func TestRouterRecordsHTTPMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			t.Errorf("meter provider shutdown: %v", err)
		}
	})

	metrics, err := instrumentation.NewMetrics(meterProvider.Meter("rest-test"), false)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	sc := server.NewServerContext(context.Background(), server.WithMetrics(metrics))
	t.Cleanup(sc.Shutdown)
	cfg := &Config{RateLimit: 1000, AllowedOrigins: []string{"*"}}
	router := NewRouter(cfg, sc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/current-time",
		strings.NewReader(`{"timezone":"UTC"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http_requests_total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("http_requests_total data type = %T, want Sum[int64]", m.Data)
			}
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	if total != 1 {
		t.Errorf("http_requests_total = %d, want 1", total)
	}
}
