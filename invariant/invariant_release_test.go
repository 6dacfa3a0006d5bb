//go:build unit && release

package invariant_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-invariant/invariant"
)

// TestRelease_ChecksCompiledOut verifies release builds contain no panic
// path: every operation is an empty body and Enabled is false.
func TestRelease_ChecksCompiledOut(t *testing.T) {
	t.Parallel()

	require.False(t, invariant.Enabled)

	require.NotPanics(t, func() {
		invariant.That(false, "never reported in release builds")
		invariant.Eq(1, 2)
		invariant.Ne(1, 1)
		invariant.Gt(1, 2)
		invariant.Ge(1, 2)
		invariant.Lt(2, 1)
		invariant.Le(2, 1)
	})
}

// TestRelease_OperandsStillEvaluated verifies the side-effect contract holds
// with checks compiled out: operands run exactly once per invocation.
func TestRelease_OperandsStillEvaluated(t *testing.T) {
	t.Parallel()

	counter := 0
	next := func() int {
		counter++
		return counter
	}

	invariant.Eq(next(), -1)
	require.Equal(t, 1, counter)

	invariant.That(next() > 100)
	require.Equal(t, 2, counter)
}
