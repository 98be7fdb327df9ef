package validate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// validationsTotal counts calls to Validate, regardless of outcome.
	//
	// Labels:
	//   - can_validate_type: "true" if the value implements HasValidate or
	//     HasValidateWithContext and validation was executed, "false" if the
	//     value implements neither interface and validation was skipped.
	//   - has_error: "true" if the validation returned an error.
	//
	// This allows tracking overall validation volume, the share of types
	// that actually implement validation, and failure rates.
	//
	// Prometheus metrics are intentionally global; they are registered once
	// and shared for the process lifetime.
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "validation_calls_total",
		Help: "The total number of calls to Validate",
	}, []string{"can_validate_type", "has_error"})

	// validationTime records the duration of validation in milliseconds,
	// labeled by the Go type being validated and whether it failed. Only
	// recorded for types that implement a validation interface.
	//
	// The buckets skew small because validations in this module are pure
	// in-memory checks; the tail exists to catch pathological cases.
	validationTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name:    "validation_time_millis",
		Help:    "The time taken to validate values, in milliseconds",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	}, []string{"type", "has_error"})
)
