package order

import (
	"fmt"

	"servicedesk/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow. Statuses are stored and serialized
// as their string values, which also appear in the public API.
type Status string

const (
	// Open is the initial status: the order is visible to eligible
	// specialists and waiting to be claimed.
	Open Status = "open"

	// Accepted indicates a specialist has claimed the order.
	Accepted Status = "accepted"

	// InProgress indicates the claiming specialist is on the way.
	InProgress Status = "in_progress"

	// Completed indicates the specialist finished the work.
	// This is a terminal state with no further transitions allowed.
	Completed Status = "completed"

	// Cancelled indicates the customer withdrew the order.
	// This is a terminal state with no further transitions allowed.
	Cancelled Status = "cancelled"
)

// getValidStatuses returns the set of valid Status values.
func getValidStatuses() map[Status]bool {
	return map[Status]bool{
		Open:       true,
		Accepted:   true,
		InProgress: true,
		Completed:  true,
		Cancelled:  true,
	}
}

// Validate checks if the Status value is one of the five lifecycle states.
// Used to reject status values arriving from external sources before use.
func (s Status) Validate() error {
	if !getValidStatuses()[s] {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no transitions lead out of this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// SupportsLocationUpdates reports whether live coordinates may be attached to
// an order in this status. Location channels are only live between claim and
// completion.
func (s Status) SupportsLocationUpdates() bool {
	return s == Accepted || s == InProgress
}

// ValidateCanHaveSpecialist validates the consistency between order status and
// specialist assignment when restoring persisted state.
//
// Business rules:
//   - Open orders must not have a specialist assigned
//   - Accepted, InProgress and Completed orders must have one
//   - Cancelled orders may have either: they retain whatever assignment
//     existed at cancellation time
func (s Status) ValidateCanHaveSpecialist(assigned bool) error {
	if s == Cancelled {
		return nil
	}

	requiresSpecialist := s == Accepted || s == InProgress || s == Completed
	if assigned && !requiresSpecialist {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a specialist", string(s)),
		)
	}
	if !assigned && requiresSpecialist {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no specialist", string(s)),
		)
	}

	return nil
}

// Claim transitions the status to Accepted.
//
// Valid transitions:
//   - Open -> Accepted
//
// Any other current status fails with an InvalidTransitionError.
func (s Status) Claim() (Status, error) {
	if s != Open {
		return "", errs.NewInvalidTransitionError(string(s), string(Accepted))
	}
	return Accepted, nil
}

// Release transitions the status back to Open.
//
// Valid transitions:
//   - Accepted -> Open
//   - InProgress -> Open
//
// Any other current status fails with an InvalidTransitionError.
func (s Status) Release() (Status, error) {
	if s != Accepted && s != InProgress {
		return "", errs.NewInvalidTransitionError(string(s), string(Open))
	}
	return Open, nil
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Accepted -> InProgress
//
// Any other current status fails with an InvalidTransitionError.
func (s Status) Start() (Status, error) {
	if s != Accepted {
		return "", errs.NewInvalidTransitionError(string(s), string(InProgress))
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed
//
// Any other current status fails with an InvalidTransitionError.
// Completed is a final state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return "", errs.NewInvalidTransitionError(string(s), string(Completed))
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Open -> Cancelled
//   - Accepted -> Cancelled
//   - InProgress -> Cancelled
//
// Terminal statuses fail with an InvalidTransitionError.
func (s Status) Cancel() (Status, error) {
	if s != Open && s != Accepted && s != InProgress {
		return "", errs.NewInvalidTransitionError(string(s), string(Cancelled))
	}
	return Cancelled, nil
}
