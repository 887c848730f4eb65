package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayMetricsRepository(t *testing.T) {
	r := NewInMemoryProductRepository()
	r.Seed(scenarioProducts()...)

	m, err := NewGatewayMetricsRepository(r).GetDashboardMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, m.TotalProducts)

	r.FailWith(errors.New("down"))
	_, err = NewGatewayMetricsRepository(r).GetDashboardMetrics(context.Background())
	assert.True(t, IsStorageError(err))
}

func TestInstrumentedGateway(t *testing.T) {
	r := NewInMemoryProductRepository()
	r.Seed(scenarioProducts()...)
	reg := prometheus.NewRegistry()
	g := NewInstrumentedGateway(r, reg)

	_, err := g.GetProducts(context.Background(), "acme")
	require.NoError(t, err)
	_, err = g.GetProductCount(context.Background())
	require.NoError(t, err)

	r.FailWith(errors.New("down"))
	_, err = g.GetProducts(context.Background(), "")
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(g.queries.WithLabelValues(opGetProducts, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(g.queries.WithLabelValues(opGetProducts, "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(g.queries.WithLabelValues(opGetProductCount, "ok")))
}
