package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess  = "success"
	OutcomeCacheHit = "cache_hit"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

// Metrics is safe to use as a nil pointer; every recorder becomes a no-op.
type Metrics struct {
	registry       *prometheus.Registry
	CatalogFetches *prometheus.CounterVec
	StaleDiscarded prometheus.Counter
	DegradedKept   prometheus.Counter
	LeagueLoads    *prometheus.CounterVec
	Conversions    prometheus.Counter
	ExportsCreated prometheus.Counter
}

func Setup(namespace string) (*Metrics, http.Handler, error) {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		CatalogFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_fetches_total",
			Help:      "Catalog fetches by outcome",
		}, []string{"outcome"}),
		StaleDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_stale_discarded_total",
			Help:      "Catalog results dropped because the active league changed while fetching",
		}),
		DegradedKept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_degraded_kept_total",
			Help:      "Fallback catalogs ignored because a good catalog of the same league was already applied",
		}),
		LeagueLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "league_loads_total",
			Help:      "League list loads by outcome",
		}, []string{"outcome"}),
		Conversions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Single-pair conversions served",
		}),
		ExportsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_created_total",
			Help:      "Stored export documents",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.CatalogFetches, m.StaleDiscarded, m.DegradedKept, m.LeagueLoads, m.Conversions, m.ExportsCreated,
		collectors.NewGoCollector(),
	} {
		if err := reg.Register(c); err != nil {
			return nil, nil, err
		}
	}

	return m, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}), nil
}

func (m *Metrics) RecordCatalogFetch(outcome string) {
	if m == nil {
		return
	}
	m.CatalogFetches.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordStaleDiscard() {
	if m == nil {
		return
	}
	m.StaleDiscarded.Inc()
}

func (m *Metrics) RecordDegradedKept() {
	if m == nil {
		return
	}
	m.DegradedKept.Inc()
}

func (m *Metrics) RecordLeagueLoad(outcome string) {
	if m == nil {
		return
	}
	m.LeagueLoads.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordConversion() {
	if m == nil {
		return
	}
	m.Conversions.Inc()
}

func (m *Metrics) RecordExport() {
	if m == nil {
		return
	}
	m.ExportsCreated.Inc()
}
