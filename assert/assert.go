// Package assert provides invariant assertions and type assertion utilities.
//
// The panic-based assertions (True, False, Nil, NotNil, NoError) guard
// internal invariants that must hold by construction; they can be compiled
// out with the assertions_disabled build tag. Type returns an error instead
// of panicking and is always active.
package assert

import (
	"fmt"

	"github.com/amp-labs/amp-measure/errors"
)

// Type asserts that the given value is of the expected type T.
// If the assertion fails, it returns an error indicating the mismatch.
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return of, fmt.Errorf("%w: expected type %T, but received %T", errors.ErrWrongType, of, val)
	}

	return of, nil
}
