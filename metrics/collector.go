// Package metrics exports singleton lifecycle counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/lifecycle/singleton"
)

// Source is anything reporting singleton stats; every wrapper does.
type Source interface {
	Stats() singleton.Stats
}

var labels = []string{"name", "kind", "policy"}

// Collector is a prometheus.Collector over a set of singleton stats.
type Collector struct {
	gather func() []singleton.Stats

	constructed *prometheus.Desc
	discarded   *prometheus.Desc
	destroyed   *prometheus.Desc
	acquired    *prometheus.Desc
	live        *prometheus.Desc
	useCount    *prometheus.Desc
}

// NewCollector collects the given wrappers.
func NewCollector(sources ...Source) *Collector {
	return newCollector(func() []singleton.Stats {
		ret := make([]singleton.Stats, 0, len(sources))
		for _, source := range sources {
			ret = append(ret, source.Stats())
		}
		return ret
	})
}

// NewSharedCollector collects every process-wide wrapper, including the ones
// bound after the collector was registered.
func NewSharedCollector() *Collector {
	return newCollector(singleton.SharedStats)
}

func newCollector(gather func() []singleton.Stats) *Collector {
	return &Collector{
		gather: gather,
		constructed: prometheus.NewDesc("singleton_constructed_total",
			"Instances constructed, including discarded ones", labels, nil),
		discarded: prometheus.NewDesc("singleton_discarded_total",
			"Instances discarded after failing validation", labels, nil),
		destroyed: prometheus.NewDesc("singleton_destroyed_total",
			"Instances destroyed after their last owner was released", labels, nil),
		acquired: prometheus.NewDesc("singleton_acquired_total",
			"Handles handed out by Acquire", labels, nil),
		live: prometheus.NewDesc("singleton_live",
			"1 when a valid instance is published", labels, nil),
		useCount: prometheus.NewDesc("singleton_use_count",
			"Owners of the published instance", labels, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.constructed
	ch <- c.discarded
	ch <- c.destroyed
	ch <- c.acquired
	ch <- c.live
	ch <- c.useCount
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, stats := range c.gather() {
		values := []string{stats.Name, stats.Kind.String(), stats.Policy.String()}
		live := 0.0
		if stats.Live {
			live = 1
		}
		ch <- prometheus.MustNewConstMetric(c.constructed, prometheus.CounterValue, float64(stats.Constructed), values...)
		ch <- prometheus.MustNewConstMetric(c.discarded, prometheus.CounterValue, float64(stats.Discarded), values...)
		ch <- prometheus.MustNewConstMetric(c.destroyed, prometheus.CounterValue, float64(stats.Destroyed), values...)
		ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.CounterValue, float64(stats.Acquired), values...)
		ch <- prometheus.MustNewConstMetric(c.live, prometheus.GaugeValue, live, values...)
		ch <- prometheus.MustNewConstMetric(c.useCount, prometheus.GaugeValue, float64(stats.UseCount), values...)
	}
}
