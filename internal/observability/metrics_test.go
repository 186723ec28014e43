package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestContactSubmissionsCounter(t *testing.T) {
	before := testutil.ToFloat64(ContactSubmissions().WithLabelValues("ok"))
	ContactSubmissions().WithLabelValues("ok").Inc()
	require.Equal(t, before+1, testutil.ToFloat64(ContactSubmissions().WithLabelValues("ok")))
}

func TestMetricsHandlerExposesCollectors(t *testing.T) {
	DiagnosticsProbes().WithLabelValues("connected").Inc()

	app := fiber.New()
	app.Get("/metrics", MetricsHandler())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "diagnostics_probes_total")
}
