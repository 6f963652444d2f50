package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestSetup_RecordsAndExposes(t *testing.T) {
	m, handler, err := Setup("poeconv")
	require.NoError(t, err)

	m.RecordCatalogFetch(OutcomeFallback)
	m.RecordCatalogFetch(OutcomeFallback)
	m.RecordCatalogFetch(OutcomeSuccess)
	m.RecordStaleDiscard()
	m.RecordDegradedKept()

	require.Equal(t, 2.0, testutil.ToFloat64(m.CatalogFetches.WithLabelValues(OutcomeFallback)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.StaleDiscarded))
	require.Equal(t, 1.0, testutil.ToFloat64(m.DegradedKept))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `poeconv_catalog_fetches_total{outcome="fallback"} 2`)
}

func TestNilMetrics_NoPanic(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.RecordCatalogFetch(OutcomeSuccess)
		m.RecordStaleDiscard()
		m.RecordDegradedKept()
		m.RecordLeagueLoad(OutcomeSuccess)
		m.RecordConversion()
		m.RecordExport()
	})
}
