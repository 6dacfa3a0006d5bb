//go:build release

package invariant

// That panics if cond is false. No-op in release builds.
func (scope *Scope) That(cond bool, msg string, kv ...any) {}

// NotNil panics if v is nil. No-op in release builds.
func (scope *Scope) NotNil(v any, msg string, kv ...any) {}

// NotEmpty panics if s is an empty string. No-op in release builds.
func (scope *Scope) NotEmpty(s, msg string, kv ...any) {}

// NoError panics if err is not nil. No-op in release builds.
func (scope *Scope) NoError(err error, msg string, kv ...any) {}

// Never always panics. No-op in release builds; a release binary that
// reaches a Never call site continues past it.
func (scope *Scope) Never(msg string, kv ...any) {}
