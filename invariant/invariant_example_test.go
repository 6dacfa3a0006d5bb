package invariant_test

import (
	"context"
	"fmt"

	"github.com/LerianStudio/lib-invariant/invariant"
	"github.com/LerianStudio/lib-invariant/invariant/predicate"
)

func ExampleThat() {
	items := []string{"a", "b"}

	invariant.That(len(items) > 0, "processItems called with empty slice")

	fmt.Println("checked")

	// Output:
	// checked
}

func ExampleGe() {
	balance, withdrawal := int64(100), int64(40)

	invariant.Ge(balance, withdrawal, "account overdrawn by %d", withdrawal-balance)

	fmt.Println(balance - withdrawal)

	// Output:
	// 60
}

func ExampleNewScope() {
	scope := invariant.NewScope(context.Background(), nil, "ledger", "post")

	scope.That(predicate.Positive(42), "amount must be positive", "amount", 42)
	scope.NotEmpty("acc-1", "account id must be set")

	fmt.Println("posted")

	// Output:
	// posted
}
