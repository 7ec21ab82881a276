package kernel_test

import (
	"errors"
	"testing"

	"quickdish/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernelConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_passes_validation", func(t *testing.T) {
		g := kernel.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g kernel.ConstructorGuard
		expectedError := errors.New("value object not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g kernel.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrDefaultConstructorGuard, err)
	})
}
