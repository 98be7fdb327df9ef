//nolint:err113 // Test file uses errors.New() for creating test errors
package validate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commonerrors "github.com/amp-labs/amp-measure/errors"
)

type alwaysValid struct{}

func (alwaysValid) Validate() error { return nil }

type alwaysInvalid struct{}

func (alwaysInvalid) Validate() error { return errors.New("bad value") }

type contextValidator struct {
	sawContext bool
	fail       bool
}

func (c *contextValidator) Validate(ctx context.Context) error {
	c.sawContext = ctx != nil

	if c.fail {
		return errors.New("context validation failed")
	}

	return nil
}

func TestValidate_PassingValidator(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate(t.Context(), alwaysValid{}))
}

func TestValidate_FailingValidator(t *testing.T) {
	t.Parallel()

	err := Validate(t.Context(), alwaysInvalid{})
	require.Error(t, err)
	assert.ErrorIs(t, err, commonerrors.ErrValidation)
	assert.Contains(t, err.Error(), "bad value")
}

func TestValidate_ContextValidator(t *testing.T) {
	t.Parallel()

	v := &contextValidator{}
	require.NoError(t, Validate(t.Context(), v))
	assert.True(t, v.sawContext)

	err := Validate(t.Context(), &contextValidator{fail: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, commonerrors.ErrValidation)
}

func TestValidate_NonValidatorPasses(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate(t.Context(), "just a string"))
	assert.NoError(t, Validate(t.Context(), 42))
}

func TestValidate_NilishValues(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate(t.Context(), nil))

	var typedNil *contextValidator

	assert.NoError(t, Validate(t.Context(), typedNil))

	var nilMap map[string]int

	assert.NoError(t, Validate(t.Context(), nilMap))
}

func TestValidate_NilContext(t *testing.T) {
	t.Parallel()

	//nolint:staticcheck // Nil context handling is the point of the test
	assert.NoError(t, Validate(nil, alwaysValid{}))
}
