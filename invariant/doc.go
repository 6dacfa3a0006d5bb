// Package invariant provides build-tag-conditioned runtime assertions for
// programming invariants.
//
// Unlike the always-on assertions used elsewhere in the Lerian libraries,
// invariants are meant to be checked during development and testing and
// compiled out of release binaries. In a default build every check is active
// and a violated invariant panics immediately with a descriptive message.
// When the binary is built with the release tag:
//
//	go build -tags release ./...
//
// every check compiles to an empty function body that the inliner removes.
// Operands and message arguments still type-check and are still evaluated
// exactly once, so side effects behave identically in both build modes; only
// the check itself disappears.
//
// # Safety contract
//
// A release build assumes every invariant holds. There is no fallback check,
// no diagnostic, and no recovery path: code that violates an invariant in a
// release build silently continues with a broken precondition and the
// consequences are unspecified. Callers must make the condition impossible to
// violate, not merely unlikely, before shipping with the release tag. Go has
// no unreachable-code optimizer intrinsic, so unlike languages that can turn
// a removed assertion into an optimization hint, the release build simply
// drops the check.
//
// # Usage
//
// The package exposes seven operations. That takes a boolean condition; the
// six comparison forms take two operands and check the named relation using
// the operand type's native ordering:
//
//	invariant.That(queue.Len() > 0)
//	invariant.Eq(got, want)
//	invariant.Ne(id, uuid.Nil)
//	invariant.Gt(limit, 0)
//	invariant.Ge(balance, withdrawal)
//	invariant.Lt(cursor, len(items))
//	invariant.Le(retries, maxRetries)
//
// Every operation accepts an optional format string and arguments which
// replace the default message:
//
//	invariant.Ge(balance, withdrawal, "account %s overdrawn", accountID)
//
// Without a custom message the comparison forms report both operand values;
// That reports only that the condition was false.
//
// Work that exists only to feed an invariant can be guarded with the Enabled
// constant so release builds drop it together with the check:
//
//	if invariant.Enabled {
//	    invariant.That(tree.balanced(), "tree must stay balanced")
//	}
//
// # Scoped invariants
//
// Scope attaches a context and component/operation labels to a group of
// checks so violations carry telemetry labels and span events. Scoped checks
// take a condition plus key-value detail pairs:
//
//	scope := invariant.NewScope(ctx, logger, "transaction", "settle")
//	scope.That(balance >= amount, "settlement exceeds balance", "balance", balance)
//	scope.NotNil(wallet, "wallet must be loaded")
//	scope.Never("unhandled settlement status", "status", status)
//
// # Failure reporting
//
// A violated invariant in a default build is loud: before panicking with a
// *ViolationError, the failure is written to the configured Logger (stderr
// when none is set), recorded as an event on the active trace span, and
// counted by the invariant_violated_total metric when InitViolationMetrics
// has been called. Stack traces are attached outside production mode.
package invariant
