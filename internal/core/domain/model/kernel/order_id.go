package kernel

import (
	"strings"

	"orderservice/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created through
// one of the constructor functions. It is returned when validating a
// zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString",
)

// OrderID is a value object wrapping the opaque string identifier of an order.
// Identifiers are trimmed of surrounding whitespace at construction and are
// never empty afterwards. Comparison is by value and case-sensitive.
//
// The zero value of OrderID is invalid and must be constructed via NewOrderID
// or OrderIDFromString. OrderID is immutable and safe for concurrent use.
type OrderID struct {
	value string
}

// NewOrderID generates a new random order identifier. The identifier is a
// random 128-bit token in canonical UUID form, so collisions are negligible.
func NewOrderID() OrderID {
	return OrderID{value: uuid.NewString()}
}

// OrderIDFromString builds an OrderID from a raw string, trimming surrounding
// whitespace. Returns a ValueIsRequiredError when the trimmed result is empty.
//
// Example:
//
//	id, err := kernel.OrderIDFromString(" order-1 ")
//	// id.String() == "order-1"
func OrderIDFromString(raw string) (OrderID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}
	return OrderID{value: trimmed}, nil
}

// Validate checks that the OrderID was created through a constructor.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// String returns the identifier as it is persisted and published.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers by value. Comparison is
// case-sensitive.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}
