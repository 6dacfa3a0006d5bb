package invariant

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrViolated is the sentinel error for violated invariants. Panic values
// recovered from this package satisfy errors.Is(err, ErrViolated).
var ErrViolated = errors.New("invariant violated")

// ViolationError is the panic value for a violated invariant.
type ViolationError struct {
	Op        string
	Message   string
	Component string
	Operation string
	Details   string
}

// Error returns the formatted violation message.
func (entry *ViolationError) Error() string {
	if entry == nil {
		return ErrViolated.Error()
	}

	if entry.Details == "" {
		return "invariant violated: " + entry.Message
	}

	return "invariant violated: " + entry.Message + "\n" + entry.Details
}

// Unwrap returns the sentinel violation error for errors.Is.
func (entry *ViolationError) Unwrap() error {
	return ErrViolated
}

// messageFrom resolves the optional caller-supplied message. The first
// element is a format string; a custom message fully replaces fallback.
func messageFrom(msgAndArgs []any, fallback string) string {
	switch len(msgAndArgs) {
	case 0:
		return fallback
	case 1:
		if msg, ok := msgAndArgs[0].(string); ok {
			return msg
		}

		return fmt.Sprintf("%+v", msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}

		return fmt.Sprintf("%+v", msgAndArgs)
	}
}

const maxValueLength = 200 // Truncate values longer than this

// truncateValue truncates long values for logging safety.
// This prevents log bloat and reduces risk of sensitive data exposure.
func truncateValue(v any) string {
	s := fmt.Sprintf("%v", v)
	if len(s) <= maxValueLength {
		return s
	}

	return s[:maxValueLength] + "... (truncated " + strconv.Itoa(len(s)-maxValueLength) + " chars)"
}

// contextPairsCapacity is the capacity for the fixed context pairs (invariant, component, operation).
const contextPairsCapacity = 6

func withContextPairs(op, component, operation string, kv []any) []any {
	contextPairs := make([]any, 0, len(kv)+contextPairsCapacity)
	contextPairs = append(contextPairs, "invariant", op)

	if component != "" {
		contextPairs = append(contextPairs, "component", component)
	}

	if operation != "" {
		contextPairs = append(contextPairs, "operation", operation)
	}

	contextPairs = append(contextPairs, kv...)

	return contextPairs
}

func formatKeyValueLines(kv []any) string {
	if len(kv) == 0 {
		return ""
	}

	var sb strings.Builder

	for i := 0; i < len(kv); i += 2 {
		if i > 0 {
			sb.WriteString("\n")
		}

		var value any
		if i+1 < len(kv) {
			value = kv[i+1]
		} else {
			value = "MISSING_VALUE"
		}

		fmt.Fprintf(&sb, "    %v=%v", kv[i], truncateValue(value))
	}

	return sb.String()
}

func formatLogMessage(msg, details string, stack []byte) string {
	var sb strings.Builder

	sb.WriteString("INVARIANT VIOLATED: ")
	sb.WriteString(msg)

	if details != "" {
		sb.WriteString("\n")
		sb.WriteString(details)
	}

	if len(stack) > 0 {
		sb.WriteString("\nstack trace:\n")
		sb.WriteString(string(stack))
	}

	return sb.String()
}
