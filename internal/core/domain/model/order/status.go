package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table so the
// reachability rules are enforceable and independently testable.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Shipped ──> Delivered
//	   │            │            │
//	   └────────────┴────────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal: no further transitions are allowed
// from either, and a delivered order cannot be cancelled.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned to every newly created order.
	Pending

	// Confirmed indicates the order has been accepted and is being prepared.
	Confirmed

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned before delivery. Terminal.
	Cancelled
)

// InvalidTransitionError indicates a status change that the transition table
// does not allow. The message names both the current and the requested status.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("status transition from %s to %s is not allowed", e.From, e.To)
}

// Unwrap classifies the transition failure as invalid input.
func (e *InvalidTransitionError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Shipped:   "shipped",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// allowedTransitions is the explicit table of allowed (from, to) pairs.
// Terminal statuses map to an empty set.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed, Cancelled},
		Confirmed: {Shipped, Cancelled},
		Shipped:   {Delivered, Cancelled},
		Delivered: {},
		Cancelled: {},
	}
}

// StatusFromString parses the lowercase wire representation of a status.
// Returns an error for unrecognized values; the zero Status is never returned
// as a valid result.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status.
// Implements fmt.Stringer and is safe to call on any Status value,
// including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s Status) IsTerminal() bool {
	targets, ok := allowedTransitions()[s]
	return ok && len(targets) == 0
}

// CanTransitionTo reports whether the transition table allows moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, target := range allowedTransitions()[s] {
		if target == next {
			return true
		}
	}
	return false
}

// TransitionTo performs the transition from s to next.
//
// Returns:
//   - (next, nil) when the transition table allows the pair
//   - (0, error) when next is not a valid status or the pair is not allowed
//
// This method is used by Order.ChangeStatus to enforce the lifecycle rules.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(next) {
		return 0, NewInvalidTransitionError(s, next)
	}

	return next, nil
}
