package metrics

import "github.com/prometheus/client_golang/prometheus"

// CartMetrics counts cart lifecycle events and optimistic write conflicts.
type CartMetrics struct {
	events    *prometheus.CounterVec
	units     *prometheus.CounterVec
	conflicts prometheus.Counter
}

// NewCartMetrics registers the cart metrics on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_events_total",
		Help: "Cart events by type and identity kind.",
	}, []string{"type", "identity"})
	units := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_units_total",
		Help: "Item units moved by cart events.",
	}, []string{"type"})
	conflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cart_version_conflicts_total",
		Help: "Cart writes rejected because the row version changed.",
	})
	reg.MustRegister(events, units, conflicts)
	return &CartMetrics{events: events, units: units, conflicts: conflicts}
}

// ObserveEvent counts a cart event and the units it moved.
func (c *CartMetrics) ObserveEvent(eventType, identity string, units int) {
	if c == nil || c.events == nil {
		return
	}
	eventType = normalizeLabel(eventType)
	c.events.WithLabelValues(eventType, normalizeLabel(identity)).Inc()
	if units > 0 {
		c.units.WithLabelValues(eventType).Add(float64(units))
	}
}

// IncConflict counts a lost compare-and-swap on a cart row.
func (c *CartMetrics) IncConflict() {
	if c == nil || c.conflicts == nil {
		return
	}
	c.conflicts.Inc()
}
