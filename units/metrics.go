package units

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// conversionsTotal counts factor lookups, labeled by source and target unit
// and by whether the lookup failed (unknown unit or missing conversion path).
// Every quantity conversion and every comparison funnels through Factor, so
// this reflects the real comparison volume of the process.
//
// Prometheus metrics are intentionally global; they are registered once and
// shared for the process lifetime.
var conversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "unit_conversions_total",
	Help: "The total number of unit conversion factor lookups",
}, []string{"from", "to", "has_error"})
