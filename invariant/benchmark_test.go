//go:build unit && !release

package invariant_test

import (
	"context"
	"math/bits"
	"testing"

	"github.com/LerianStudio/lib-invariant/invariant"
)

// Benchmarks cover the hot path only (conditions hold). Target: a handful of
// nanoseconds and zero allocations per check, so invariants stay cheap enough
// to scatter through tight loops during development.

func BenchmarkThat_True(b *testing.B) {
	for i := 0; i < b.N; i++ {
		invariant.That(true)
	}
}

func BenchmarkThat_TrueWithMessage(b *testing.B) {
	for i := 0; i < b.N; i++ {
		invariant.That(true, "benchmark invariant %d", i)
	}
}

func BenchmarkEq_Equal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		invariant.Eq(i, i)
	}
}

func BenchmarkGt_Holds(b *testing.B) {
	for i := 0; i < b.N; i++ {
		invariant.Gt(i+1, i)
	}
}

func BenchmarkScopeThat_True(b *testing.B) {
	scope := invariant.NewScope(context.Background(), nil, "bench", "that")

	for i := 0; i < b.N; i++ {
		scope.That(true, "benchmark invariant")
	}
}

// ilog2 benchmarks mirror the classic use case for unchecked invariants: a
// precondition guarding an intrinsic-backed computation.

func ilog2(x uint) int {
	return bits.Len(x) - 1
}

func ilog2Checked(x uint) int {
	invariant.Gt(x, 0, "x must be positive")
	return bits.Len(x) - 1
}

func BenchmarkIlog2_Bare(b *testing.B) {
	var sink int
	for i := 0; i < b.N; i++ {
		sink += ilog2(uint(i) + 1)
	}
	_ = sink
}

func BenchmarkIlog2_WithInvariant(b *testing.B) {
	var sink int
	for i := 0; i < b.N; i++ {
		sink += ilog2Checked(uint(i) + 1)
	}
	_ = sink
}
