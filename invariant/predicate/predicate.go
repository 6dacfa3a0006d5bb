package predicate

import (
	"cmp"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Positive reports whether n > 0.
func Positive(n int64) bool {
	return n > 0
}

// NonNegative reports whether n >= 0.
func NonNegative(n int64) bool {
	return n >= 0
}

// NotZero reports whether n != 0.
func NotZero(n int64) bool {
	return n != 0
}

// InRange reports whether low <= v <= high under the type's native ordering.
func InRange[T cmp.Ordered](v, low, high T) bool {
	return v >= low && v <= high
}

// ValidUUID reports whether s is a well-formed UUID.
func ValidUUID(s string) bool {
	return uuid.Validate(s) == nil
}

// maxDecimalExponent bounds amounts and scales to the precision window
// supported by ledger storage.
const maxDecimalExponent = 18

// ValidAmount reports whether d's exponent is within [-18, 18].
func ValidAmount(d decimal.Decimal) bool {
	exp := int64(d.Exponent())

	return exp >= -maxDecimalExponent && exp <= maxDecimalExponent
}

// ValidScale reports whether scale is within [0, 18].
func ValidScale(scale int) bool {
	return scale >= 0 && scale <= maxDecimalExponent
}

// PositiveDecimal reports whether d > 0.
func PositiveDecimal(d decimal.Decimal) bool {
	return d.IsPositive()
}

// NonNegativeDecimal reports whether d >= 0.
func NonNegativeDecimal(d decimal.Decimal) bool {
	return !d.IsNegative()
}
