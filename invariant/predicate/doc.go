// Package predicate provides boolean helpers for common domain validations,
// designed to be used as invariant conditions.
//
// Predicates carry no reporting behavior of their own; pair them with the
// invariant package:
//
//	invariant.That(predicate.Positive(count), "count must be positive", count)
//	invariant.That(predicate.ValidUUID(id), "malformed account id: %s", id)
//
// The financial predicates bound decimal exponents and scales to [-18, 18],
// the precision window used across Lerian ledger services.
package predicate
