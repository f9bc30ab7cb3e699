package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Pending ─> Confirmed ─> InPreparation ─> Ready ─> Served ─> Paid
//	   │           │              │            │        │
//	   └───────────┴──────────────┴────────────┴────────┴──> Cancelled
//
// Paid and Cancelled are terminal. Advance moves exactly one step along the
// forward chain, Cancel jumps to Cancelled from any non-terminal state.
type Status int

const (
	// Unknown is the zero value and never a valid state.
	Unknown Status = iota
	Pending
	Confirmed
	InPreparation
	Ready
	Served
	Paid
	Cancelled
)

const (
	actionAdvance = "advance"
	actionCancel  = "cancel"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "unknown",
		Pending:       "pending",
		Confirmed:     "confirmed",
		InPreparation: "in_preparation",
		Ready:         "ready",
		Served:        "served",
		Paid:          "paid",
		Cancelled:     "cancelled",
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Confirmed, InPreparation, Ready, Served, Paid, Cancelled}
}

// ParseStatus converts the persisted or wire representation back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out of range values, for example ones read
// back from storage.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name used in storage and in the API.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Paid || s == Cancelled
}

// IsActive reports whether the order is still being worked on by the
// restaurant, i.e. it has not been served, paid or cancelled.
func (s Status) IsActive() bool {
	switch s {
	case Pending, Confirmed, InPreparation, Ready:
		return true
	case Unknown, Served, Paid, Cancelled:
		return false
	}
	return false
}

// Next returns the sole successor of s in the forward chain.
//
// The chain is Pending, Confirmed, InPreparation, Ready, Served, Paid.
//
// Returns:
//   - the successor status and nil for every status before Paid
//   - Unknown and ErrInvalidTransition for Paid, Cancelled and Unknown
//
// Example:
//
//	next, err := order.Ready.Next()
//	// next == order.Served, err == nil
//
//	_, err = order.Paid.Next()
//	// errors.Is(err, errs.ErrInvalidTransition)
func (s Status) Next() (Status, error) {
	switch s {
	case Pending:
		return Confirmed, nil
	case Confirmed:
		return InPreparation, nil
	case InPreparation:
		return Ready, nil
	case Ready:
		return Served, nil
	case Served:
		return Paid, nil
	case Unknown, Paid, Cancelled:
		return Unknown, errs.NewInvalidTransitionError(s.String(), actionAdvance)
	}
	return Unknown, errs.NewInvalidTransitionError(s.String(), actionAdvance)
}

// Cancel returns Cancelled for every non-terminal status. Cancelling a
// Cancelled status is reported by the caller as a no-op, so Cancel itself
// treats it like any other terminal state.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Pending, Confirmed, InPreparation, Ready, Served:
		return Cancelled, nil
	case Unknown, Paid, Cancelled:
		return Unknown, errs.NewInvalidTransitionError(s.String(), actionCancel)
	}
	return Unknown, errs.NewInvalidTransitionError(s.String(), actionCancel)
}
