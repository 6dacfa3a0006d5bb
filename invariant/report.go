package invariant

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"runtime/debug"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Logger defines the minimal logging interface required by violation
// reporting. It is satisfied by *zap.SugaredLogger and by the adapter in the
// invariant/zap subpackage.
type Logger interface {
	Errorf(format string, args ...any)
}

var (
	packageLogger   Logger
	packageLoggerMu sync.RWMutex
)

// SetLogger configures the logger used by the package-level invariant
// operations. Pass nil to fall back to stderr.
func SetLogger(logger Logger) {
	packageLoggerMu.Lock()
	defer packageLoggerMu.Unlock()

	packageLogger = logger
}

func getLogger() Logger {
	packageLoggerMu.RLock()
	defer packageLoggerMu.RUnlock()

	return packageLogger
}

// Scope attaches a context and component/operation labels to a group of
// invariant checks. Violations inside a scope carry the labels in their
// details, metric labels, and span events, and the span from ctx (when
// recording) receives the violation event.
type Scope struct {
	ctx       context.Context
	logger    Logger
	component string
	operation string
}

// defaultScope backs the package-level operations: no context, no labels,
// package logger.
var defaultScope = &Scope{}

// NewScope creates a Scope with context, logging, and telemetry labels.
//
//nolint:contextcheck // Intentionally creates a fallback context when nil is passed
func NewScope(ctx context.Context, logger Logger, component, operation string) *Scope {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Scope{
		ctx:       ctx,
		logger:    logger,
		component: component,
		operation: operation,
	}
}

func (scope *Scope) values() (context.Context, Logger, string, string) {
	if scope == nil {
		return context.Background(), getLogger(), "", ""
	}

	ctx := scope.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	logger := scope.logger
	if logger == nil {
		logger = getLogger()
	}

	return ctx, logger, scope.component, scope.operation
}

// failCompare builds the failure for a two-operand check. A caller-supplied
// message fully replaces the default relation text and operand details.
func failCompare(scope *Scope, op, relation string, left, right any, msgAndArgs []any) {
	if len(msgAndArgs) > 0 {
		fail(scope, op, messageFrom(msgAndArgs, relation), nil)
		return
	}

	fail(scope, op, relation, []any{"left", left, "right", right})
}

// fail reports the violation and panics with a *ViolationError. It never
// returns.
func fail(scope *Scope, op, msg string, kv []any) {
	ctx, logger, component, operation := scope.values()
	contextPairs := withContextPairs(op, component, operation, kv)
	details := formatKeyValueLines(contextPairs)

	stack := []byte(nil)
	if shouldIncludeStack() {
		stack = debug.Stack()
	}

	logViolation(logger, formatLogMessage(msg, details, stack))
	recordViolationObservability(ctx, op, msg, stack, component, operation)

	panic(&ViolationError{
		Op:        op,
		Message:   msg,
		Component: component,
		Operation: operation,
		Details:   details,
	})
}

func logViolation(logger Logger, message string) {
	if logger != nil {
		logger.Errorf("%s", message)
		return
	}

	fmt.Fprintln(os.Stderr, message)
}

// isNil checks if a value is nil, handling both untyped nil and typed nil
// (nil interface values with concrete types).
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// ViolationSpanEventName is the event name used when recording invariant
// violations on spans.
const ViolationSpanEventName = "invariant.violated"

func recordViolationObservability(
	ctx context.Context,
	op, message string,
	stack []byte,
	component, operation string,
) {
	recordViolationMetric(ctx, component, operation, op)
	recordViolationToSpan(ctx, op, message, stack, component, operation)
}

func recordViolationToSpan(
	ctx context.Context,
	op, message string,
	stack []byte,
	component, operation string,
) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("invariant.op", op),
		attribute.String("invariant.message", message),
	}

	if component != "" {
		attrs = append(attrs, attribute.String("invariant.component", component))
	}

	if operation != "" {
		attrs = append(attrs, attribute.String("invariant.operation", operation))
	}

	if len(stack) > 0 {
		attrs = append(attrs, attribute.String("invariant.stack", string(stack)))
	}

	span.AddEvent(ViolationSpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(fmt.Errorf("%w: %s", ErrViolated, message))
	span.SetStatus(codes.Error, violationStatusMessage(component, operation))
}

func violationStatusMessage(component, operation string) string {
	switch {
	case component != "" && operation != "":
		return fmt.Sprintf("invariant violated in %s/%s", component, operation)
	case component != "":
		return "invariant violated in " + component
	case operation != "":
		return "invariant violated in " + operation
	default:
		return "invariant violated"
	}
}
