//go:build release

package invariant

import "cmp"

// That panics if cond is false. No-op in release builds; violating the
// condition in a release build breaks the package safety contract.
func That(cond bool, msgAndArgs ...any) {}

// Eq panics if left != right. No-op in release builds.
func Eq[T comparable](left, right T, msgAndArgs ...any) {}

// Ne panics if left == right. No-op in release builds.
func Ne[T comparable](left, right T, msgAndArgs ...any) {}

// Gt panics unless left > right. No-op in release builds.
func Gt[T cmp.Ordered](left, right T, msgAndArgs ...any) {}

// Ge panics unless left >= right. No-op in release builds.
func Ge[T cmp.Ordered](left, right T, msgAndArgs ...any) {}

// Lt panics unless left < right. No-op in release builds.
func Lt[T cmp.Ordered](left, right T, msgAndArgs ...any) {}

// Le panics unless left <= right. No-op in release builds.
func Le[T cmp.Ordered](left, right T, msgAndArgs ...any) {}
