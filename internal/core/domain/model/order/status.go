package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel unwrapped by InvalidTransitionError.
// Use errors.Is(err, ErrInvalidTransition) to classify rejected transitions.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a status change that the fulfillment
// workflow does not permit. It carries both endpoints of the attempted move.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given endpoints.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the fulfillment state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Processed ──> Shipped ──> Completed
//	   │            │            │
//	   └────────────┴────────────┴──> Cancelled
//
// Completed and Cancelled are terminal; no transitions leave them.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status, set when checkout creates the order.
	Pending

	// Processed indicates the seller has accepted and prepared the order.
	Processed

	// Shipped indicates the order has been handed to a courier.
	// Entering this status creates the order's Shipment record.
	Shipped

	// Completed indicates the order was delivered and closed.
	// This is a final state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was abandoned before completion.
	// This is a final state with no further transitions allowed.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Processed: "processed",
		Shipped:   "shipped",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Processed: "processed",
		Shipped:   "shipped",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// validNext encodes the legality matrix of the fulfillment workflow.
// A transition from -> to is legal iff validNext[from][to] is true.
var validNext = map[Status]map[Status]bool{
	Pending:   {Processed: true, Cancelled: true},
	Processed: {Shipped: true, Cancelled: true},
	Shipped:   {Completed: true, Cancelled: true},
	Completed: {},
	Cancelled: {},
}

// StatusFromString parses the lowercase wire representation of a status.
// Returns an error for "unknown" and for any unrecognized value.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the five defined states.
// Unknown (0) and any other values are invalid. This is used to ensure Status
// values from external sources (database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for
// invalid values. Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether moving to target is legal from this status,
// without performing the transition.
func (s Status) CanTransitionTo(target Status) bool {
	return validNext[s][target]
}

// TransitionTo returns the target status if the move is legal.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (Unknown, *InvalidTransitionError) when the workflow forbids the move,
//     including any transition out of Completed or Cancelled and any
//     self-transition
//
// This method is used by Order.TransitionTo to enforce the workflow.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, NewInvalidTransitionError(s, target)
	}
	return target, nil
}

// ValidateCanHaveShipment validates the consistency between order status and
// the presence of a shipment record.
//
// Business rules:
//   - Pending and Processed orders must not have a shipment
//   - Shipped and Completed orders must have a shipment
//   - Cancelled orders may have one iff they were cancelled after shipping
func (s Status) ValidateCanHaveShipment(hasShipment bool) error {
	if hasShipment && (s == Pending || s == Processed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a shipment", s.String()),
		)
	}

	if !hasShipment && (s == Shipped || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no shipment", s.String()),
		)
	}

	return nil
}
