// Package validate provides a unified entry point for validating values that
// implement a validation interface. Callers hand it arbitrary values; types
// that know how to validate themselves are checked, everything else passes.
package validate

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/amp-labs/amp-measure/errors"
	"github.com/amp-labs/amp-measure/logger"
)

// HasValidate defines the interface for types that can validate themselves without requiring a context.
// Types implementing this interface should return an error if validation fails, or nil if the value is valid.
type HasValidate interface {
	// Validate checks the validity of the implementing type and returns an error if validation fails.
	// This method should be idempotent and safe to call multiple times.
	Validate() error
}

// HasValidateWithContext defines the interface for types that require a context during validation.
// Types implementing this interface should return an error if validation fails, or nil if the
// value is valid. Implementations should respect context cancellation.
type HasValidateWithContext interface {
	Validate(ctx context.Context) error
}

// Validate performs validation on a value by checking whether it implements
// HasValidate or HasValidateWithContext. Values implementing neither
// interface (and nil values) pass validation.
//
// Validation errors are wrapped with errors.ErrValidation, so failures can be
// identified with errors.Is(err, errors.ErrValidation).
func Validate(ctx context.Context, value any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	err := validateInternal(ctx, value)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrValidation, err)
	}

	return nil
}

// validateInternal dispatches to the type's validation method and records
// metrics. Separated from Validate so recursive validation doesn't wrap
// errors multiple times.
func validateInternal(ctx context.Context, value any) error {
	if isNilish(value) {
		return nil
	}

	start := time.Now()

	var (
		canValidate bool
		err         error
	)

	switch v := value.(type) {
	case HasValidate:
		canValidate = true
		err = v.Validate()
	case HasValidateWithContext:
		canValidate = true
		err = v.Validate(ctx)
	default:
		logger.Get(ctx).Warn("Validate called on unsupported type",
			"type", fmt.Sprintf("%T", v))
	}

	validationsTotal.WithLabelValues(
		strconv.FormatBool(canValidate),
		strconv.FormatBool(err != nil),
	).Inc()

	if canValidate {
		validationTime.WithLabelValues(
			fmt.Sprintf("%T", value),
			strconv.FormatBool(err != nil),
		).Observe(float64(time.Since(start).Milliseconds()))
	}

	return err
}

// isNilish reports whether the value is nil, or a nil pointer, map, slice,
// channel, function, or interface.
func isNilish(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
