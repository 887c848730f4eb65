package repo

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentedGateway records call counts and latencies of another gateway.
type InstrumentedGateway struct {
	next     ProductGateway
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewInstrumentedGateway(next ProductGateway, reg prometheus.Registerer) *InstrumentedGateway {
	g := &InstrumentedGateway{
		next: next,
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catalog",
			Subsystem: "gateway",
			Name:      "queries_total",
			Help:      "Product gateway calls by operation and outcome.",
		}, []string{"op", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "catalog",
			Subsystem: "gateway",
			Name:      "query_duration_seconds",
			Help:      "Product gateway call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}
	reg.MustRegister(g.queries, g.duration)
	return g
}

func (g *InstrumentedGateway) GetProducts(ctx context.Context, searchTerm string) (ResultSet, error) {
	start := time.Now()
	rs, err := g.next.GetProducts(ctx, searchTerm)
	g.observe(opGetProducts, start, err)
	return rs, err
}

func (g *InstrumentedGateway) GetProductCount(ctx context.Context) (int, error) {
	start := time.Now()
	n, err := g.next.GetProductCount(ctx)
	g.observe(opGetProductCount, start, err)
	return n, err
}

func (g *InstrumentedGateway) observe(op string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	g.queries.WithLabelValues(op, outcome).Inc()
	g.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
