package order

import (
	"errors"
	"fmt"

	"orderservice/internal/pkg/errs"
)

// ErrCannotAdvance is the sentinel for invalid transition errors. Callers
// classify with errors.Is; the concrete *CannotAdvanceError carries the
// current status.
var ErrCannotAdvance = errors.New("cannot advance order status")

// CannotAdvanceError indicates an attempt to advance an order that has no
// next status, i.e. one already in the terminal Delivered state.
type CannotAdvanceError struct {
	Current Status
}

// NewCannotAdvanceError creates an invalid transition error for the given
// current status.
func NewCannotAdvanceError(current Status) *CannotAdvanceError {
	return &CannotAdvanceError{Current: current}
}

func (e *CannotAdvanceError) Error() string {
	return fmt.Sprintf("cannot advance order status: %s is a terminal status", e.Current)
}

func (e *CannotAdvanceError) Unwrap() error {
	return ErrCannotAdvance
}

// Status represents the lifecycle state of an order.
// It implements a state machine with a fixed, forward-only, linear sequence:
//
//	Created ──> Processing ──> Shipped ──> Delivered
//
// Delivered is terminal and has no outgoing transition. There are no branches
// and no cycles; the only way to change status is to advance to the single
// next state in the sequence.
//
// The lowercase string tokens returned by String are persisted and published
// as-is. They are a stable contract with storage and downstream event
// consumers and must not change.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status of every new order.
	Created

	// Processing indicates the order is being prepared.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer.
	// This is the terminal state with no further transitions.
	Delivered
)

// getStatusStrings returns a map of Status values to their canonical tokens.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Created:    "created",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "created",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
	}
}

// getNextStatuses returns the forward-only transition table. A status absent
// from the map has no successor.
func getNextStatuses() map[Status]Status {
	return map[Status]Status{
		Created:    Processing,
		Processing: Shipped,
		Shipped:    Delivered,
	}
}

// ParseStatus converts a raw token into a Status. Matching is exact and
// case-sensitive against the canonical lowercase tokens. Any other value,
// including the empty string, fails with a ValueIsInvalidError.
func ParseStatus(token string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == token {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", token),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Processing, Shipped, Delivered.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g. database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the canonical lowercase token of the status.
//
// Returns "created", "processing", "shipped" or "delivered" for valid
// statuses and "unknown" for invalid values. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Next computes the single next status in the fixed sequence.
//
// Returns:
//   - (next, nil) for Created, Processing and Shipped
//   - (0, *CannotAdvanceError) for Delivered, which is terminal
//   - (0, ValueIsInvalidError) for Unknown or any other invalid value
//
// Callers cannot choose the target status; the sequence permits exactly one
// forward step from any non-terminal state.
func (s Status) Next() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}

	next, ok := getNextStatuses()[s]
	if !ok {
		return Unknown, NewCannotAdvanceError(s)
	}

	return next, nil
}

// CanAdvance reports whether the status has a next state in the sequence.
// It is a pure table lookup and never fails; invalid statuses simply cannot
// advance.
func (s Status) CanAdvance() bool {
	_, ok := getNextStatuses()[s]
	return ok
}
