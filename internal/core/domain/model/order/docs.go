// Package order provides domain entities and business logic for order
// tracking. It implements the Order aggregate root with lifecycle management
// and forward-only state transitions.
//
// The package includes:
//   - Order: The aggregate root owning identity, status and timestamps
//   - Status: A state machine enforcing the fixed linear status sequence
//   - Domain events: immutable facts emitted for every accepted change
//
// Key business rules:
//   - Order status follows a fixed workflow: created -> processing ->
//     shipped -> delivered
//   - Advancement is single-step and takes no target argument; callers
//     cannot skip or reorder states
//   - delivered is terminal; advancing past it is the single invalid
//     transition the model can produce
//   - updatedAt changes exactly when a transition is accepted
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
