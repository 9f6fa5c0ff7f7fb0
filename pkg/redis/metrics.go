package redis

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	poolStatsOnce sync.Once

	poolHits     prometheus.GaugeFunc
	poolMisses   prometheus.GaugeFunc
	poolTotal    prometheus.GaugeFunc
	poolIdle     prometheus.GaugeFunc
	poolTimeouts prometheus.GaugeFunc
)

// registerPoolStats exposes connection-pool statistics for the first client
// created; subsequent clients are ignored to keep registration unique.
func registerPoolStats(c *Client) {
	poolStatsOnce.Do(func() {
		poolHits = newPoolGauge("redis_pool_hits", "Connections found in the pool.", func() float64 {
			return float64(c.PoolStats().Hits)
		})
		poolMisses = newPoolGauge("redis_pool_misses", "Connections not found in the pool.", func() float64 {
			return float64(c.PoolStats().Misses)
		})
		poolTotal = newPoolGauge("redis_pool_total_conns", "Total connections in the pool.", func() float64 {
			return float64(c.PoolStats().TotalConns)
		})
		poolIdle = newPoolGauge("redis_pool_idle_conns", "Idle connections in the pool.", func() float64 {
			return float64(c.PoolStats().IdleConns)
		})
		poolTimeouts = newPoolGauge("redis_pool_timeouts", "Pool checkout timeouts.", func() float64 {
			return float64(c.PoolStats().Timeouts)
		})

		prometheus.MustRegister(poolHits, poolMisses, poolTotal, poolIdle, poolTimeouts)
	})
}

func newPoolGauge(name, help string, fn func() float64) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{Name: name, Help: help}, fn)
}
