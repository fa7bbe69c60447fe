// Package metrics exports validation outcomes as Prometheus counters.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/datavalidator"
	"github.com/dmitrymomot/datavalidator/pkg/rulespec"
)

// Collector counts check outcomes. Its Observe method can be passed to
// datavalidator.WithObserver.
type Collector struct {
	checks  *prometheus.CounterVec
	skipped prometheus.Counter
}

// NewCollector registers the validation metrics on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		checks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "datavalidator_checks_total",
			Help: "Total number of executed checks",
		}, []string{"check", "result"}), // result: passed, failed, unresolved
		skipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "datavalidator_fields_skipped_total",
			Help: "Total number of fields skipped by short-circuit rules",
		}),
	}
}

// Observe records one outcome. The check label holds the lower-cased
// check type without parameters.
func (c *Collector) Observe(o datavalidator.Outcome) {
	if o.Result == datavalidator.ResultSkipped {
		c.skipped.Inc()
		return
	}
	checkType := strings.ToLower(rulespec.CheckType(o.Check))
	c.checks.WithLabelValues(checkType, string(o.Result)).Inc()
}

// Observer returns Observe as a datavalidator.Observer.
func (c *Collector) Observer() datavalidator.Observer {
	return c.Observe
}
