//go:build !release

package invariant

import "cmp"

// That panics if cond is false. Use for general-purpose invariants.
//
// Example:
//
//	invariant.That(len(items) > 0, "processItems called with empty slice")
func That(cond bool, msgAndArgs ...any) {
	if !cond {
		fail(defaultScope, "That", messageFrom(msgAndArgs, "condition is false"), nil)
	}
}

// Eq panics if left != right. The default message includes both operand
// values.
func Eq[T comparable](left, right T, msgAndArgs ...any) {
	if left != right {
		failCompare(defaultScope, "Eq", "left == right", left, right, msgAndArgs)
	}
}

// Ne panics if left == right. The default message includes both operand
// values.
func Ne[T comparable](left, right T, msgAndArgs ...any) {
	if left == right {
		failCompare(defaultScope, "Ne", "left != right", left, right, msgAndArgs)
	}
}

// Gt panics unless left > right under the operand type's native ordering.
func Gt[T cmp.Ordered](left, right T, msgAndArgs ...any) {
	if left <= right {
		failCompare(defaultScope, "Gt", "left > right", left, right, msgAndArgs)
	}
}

// Ge panics unless left >= right under the operand type's native ordering.
func Ge[T cmp.Ordered](left, right T, msgAndArgs ...any) {
	if left < right {
		failCompare(defaultScope, "Ge", "left >= right", left, right, msgAndArgs)
	}
}

// Lt panics unless left < right under the operand type's native ordering.
func Lt[T cmp.Ordered](left, right T, msgAndArgs ...any) {
	if left >= right {
		failCompare(defaultScope, "Lt", "left < right", left, right, msgAndArgs)
	}
}

// Le panics unless left <= right under the operand type's native ordering.
func Le[T cmp.Ordered](left, right T, msgAndArgs ...any) {
	if left > right {
		failCompare(defaultScope, "Le", "left <= right", left, right, msgAndArgs)
	}
}
