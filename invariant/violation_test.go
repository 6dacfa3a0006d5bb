//go:build unit

package invariant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestViolationError_NilReceiver verifies a nil entry falls back to the sentinel text.
func TestViolationError_NilReceiver(t *testing.T) {
	t.Parallel()

	var entry *ViolationError
	require.Equal(t, ErrViolated.Error(), entry.Error())
}

// TestViolationError_WithoutDetails verifies the short form message.
func TestViolationError_WithoutDetails(t *testing.T) {
	t.Parallel()

	entry := &ViolationError{Op: "That", Message: "queue must not be empty"}
	require.Equal(t, "invariant violated: queue must not be empty", entry.Error())
}

// TestViolationError_WithDetails verifies details are appended on their own lines.
func TestViolationError_WithDetails(t *testing.T) {
	t.Parallel()

	entry := &ViolationError{
		Op:      "Eq",
		Message: "left == right",
		Details: "    left=1\n    right=2",
	}

	msg := entry.Error()
	require.Contains(t, msg, "invariant violated: left == right")
	require.Contains(t, msg, "    left=1")
	require.Contains(t, msg, "    right=2")
}

// TestViolationError_Unwrap verifies errors.Is works against the sentinel.
func TestViolationError_Unwrap(t *testing.T) {
	t.Parallel()

	entry := &ViolationError{Op: "Gt", Message: "left > right"}
	require.ErrorIs(t, entry, ErrViolated)
}

// TestMessageFrom_Forms verifies the three caller message forms.
func TestMessageFrom_Forms(t *testing.T) {
	t.Parallel()

	require.Equal(t, "fallback", messageFrom(nil, "fallback"))
	require.Equal(t, "plain", messageFrom([]any{"plain"}, "fallback"))
	require.Equal(t, "id 42 missing", messageFrom([]any{"id %d missing", 42}, "fallback"))
}

// TestMessageFrom_NonStringFirstArg verifies non-string messages are not dropped.
func TestMessageFrom_NonStringFirstArg(t *testing.T) {
	t.Parallel()

	require.Equal(t, "42", messageFrom([]any{42}, "fallback"))
}

// TestFormatKeyValueLines_OddPairs verifies the missing value marker.
func TestFormatKeyValueLines_OddPairs(t *testing.T) {
	t.Parallel()

	out := formatKeyValueLines([]any{"key1", "value1", "dangling"})
	require.Contains(t, out, "    key1=value1")
	require.Contains(t, out, "    dangling=MISSING_VALUE")
}

// TestTruncateValue_LongValue verifies long values are cut with a marker.
func TestTruncateValue_LongValue(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", maxValueLength+50)
	out := truncateValue(long)
	require.Len(t, out, maxValueLength+len("... (truncated 50 chars)"))
	require.Contains(t, out, "truncated 50 chars")
}

// TestWithContextPairs_SkipsEmptyLabels verifies empty component/operation are omitted.
func TestWithContextPairs_SkipsEmptyLabels(t *testing.T) {
	t.Parallel()

	pairs := withContextPairs("Ne", "", "", []any{"left", 1, "right", 1})
	require.Equal(t, []any{"invariant", "Ne", "left", 1, "right", 1}, pairs)

	pairs = withContextPairs("Ne", "ledger", "post", nil)
	require.Equal(t, []any{"invariant", "Ne", "component", "ledger", "operation", "post"}, pairs)
}

// TestViolationStatusMessage covers all label combinations.
func TestViolationStatusMessage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "invariant violated in ledger/post", violationStatusMessage("ledger", "post"))
	require.Equal(t, "invariant violated in ledger", violationStatusMessage("ledger", ""))
	require.Equal(t, "invariant violated in post", violationStatusMessage("", "post"))
	require.Equal(t, "invariant violated", violationStatusMessage("", ""))
}

// TestSanitizeMetricLabel verifies long labels are truncated.
func TestSanitizeMetricLabel(t *testing.T) {
	t.Parallel()

	require.Equal(t, "short", sanitizeMetricLabel("short"))

	long := strings.Repeat("a", MaxMetricLabelLength+10)
	require.Len(t, sanitizeMetricLabel(long), MaxMetricLabelLength)
}

// TestIsNil_TypedNil verifies typed nils are detected.
func TestIsNil_TypedNil(t *testing.T) {
	t.Parallel()

	require.True(t, isNil(nil))

	var ptr *int
	require.True(t, isNil(ptr))

	var m map[string]int
	require.True(t, isNil(m))

	require.False(t, isNil(0))
	require.False(t, isNil(""))

	x := 1
	require.False(t, isNil(&x))
}
