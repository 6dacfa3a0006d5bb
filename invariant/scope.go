//go:build !release

package invariant

import "fmt"

// That panics if cond is false, labeled with the scope's component and
// operation.
//
// Example:
//
//	scope.That(len(items) > 0, "items must not be empty", "count", len(items))
//
// Arguments after the message are key-value pairs included in the violation
// details.
func (scope *Scope) That(cond bool, msg string, kv ...any) {
	if cond {
		return
	}

	fail(scope, "That", msg, kv)
}

// NotNil panics if v is nil. This method correctly handles both untyped nil
// and typed nil (nil interface values with concrete types).
func (scope *Scope) NotNil(v any, msg string, kv ...any) {
	if !isNil(v) {
		return
	}

	fail(scope, "NotNil", msg, kv)
}

// NotEmpty panics if s is an empty string.
func (scope *Scope) NotEmpty(s, msg string, kv ...any) {
	if s != "" {
		return
	}

	fail(scope, "NotEmpty", msg, kv)
}

// NoError panics if err is not nil. The error message and type are
// automatically included in the violation details.
func (scope *Scope) NoError(err error, msg string, kv ...any) {
	if err == nil {
		return
	}

	// Prepend error and error_type to key-value pairs for richer debugging
	// errorKVPairs: 2 pairs added (error + error_type), each pair = 2 elements
	const errorKVPairs = 4

	kvWithError := make([]any, 0, len(kv)+errorKVPairs)
	kvWithError = append(kvWithError, "error", err.Error())
	kvWithError = append(kvWithError, "error_type", fmt.Sprintf("%T", err))
	kvWithError = append(kvWithError, kv...)

	fail(scope, "NoError", msg, kvWithError)
}

// Never always panics. Use for code paths that must be unreachable.
//
// Example:
//
//	scope.Never("unhandled status", "status", status)
func (scope *Scope) Never(msg string, kv ...any) {
	fail(scope, "Never", msg, kv)
}
