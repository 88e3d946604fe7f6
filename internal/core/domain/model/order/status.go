package order

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
)

// ErrInvalidStatusTransition classifies status-engine rejections for errors.Is.
var ErrInvalidStatusTransition = errors.New("invalid status transition")

// InvalidTransitionError is returned when a requested status change is not
// allowed from the order's current status. Its message is the exact text
// surfaced to API clients.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("Cannot change status from %s to %s.", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	pending ──┬──> processing ──> completed
//	          │
//	          └──> cancelled
//
// completed and cancelled are terminal. Cancellation is permitted from
// pending only.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at creation.
	Pending

	// Processing indicates the order has been picked up for fulfillment.
	Processing

	// Completed indicates fulfillment finished. Terminal.
	Completed

	// Cancelled indicates the order was withdrawn while still pending. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns only the statuses an order may actually hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// ParseStatus converts the wire representation ("pending", "processing",
// "completed", "cancelled") into a Status. Used when binding API input and
// when restoring rows from persistence.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the four valid values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// TransitionTo evaluates the transition rule and returns the new status on
// success. On rejection it returns an InvalidTransitionError carrying the
// message shown to callers; the receiver is never mutated.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if !s.canTransitionTo(target) {
		return Unknown, NewInvalidTransitionError(s, target)
	}

	return target, nil
}

// canTransitionTo evaluates the decision rule. The checks are ordered:
// terminal completed first, the cancellation special case second, the
// general table last. The cancellation clause overrides the table for the
// cancelled target, so the steps must not be flattened into the table.
func (s Status) canTransitionTo(target Status) bool {
	if s == Completed {
		return false
	}

	if target == Cancelled {
		return s == Pending
	}

	return getTransitionTable()[s][target]
}

// getTransitionTable returns the allowed transitions per source status.
// Statuses absent from the map have no outgoing transitions.
func getTransitionTable() map[Status]map[Status]bool {
	return map[Status]map[Status]bool{
		Pending:    {Processing: true, Cancelled: true},
		Processing: {Completed: true},
	}
}
