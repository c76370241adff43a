package order

import (
	"errors"
	"time"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/core/domain/model/specialty"
	"servicedesk/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// TrackedPoint is a live coordinate report attached to an in-flight order:
// a geographic point plus the server time it was reported. Each new report
// overwrites the previous one; no history is retained.
type TrackedPoint struct {
	point     kernel.GeoPoint
	updatedAt time.Time
}

// NewTrackedPoint creates a TrackedPoint from a validated point and report time.
func NewTrackedPoint(point kernel.GeoPoint, updatedAt time.Time) (TrackedPoint, error) {
	if err := point.Validate(); err != nil {
		return TrackedPoint{}, err
	}
	return TrackedPoint{point: point, updatedAt: updatedAt}, nil
}

// Point returns the reported coordinates.
func (t TrackedPoint) Point() kernel.GeoPoint {
	return t.point
}

// UpdatedAt returns the server time of the report.
func (t TrackedPoint) UpdatedAt() time.Time {
	return t.updatedAt
}

// Details holds the customer-supplied metadata of an order. All fields are
// optional and immutable after creation; there is no edit operation.
type Details struct {
	Description   string
	ProposedPrice *float64
	PreferredAt   *time.Time
	AddressText   string
}

// Order is the aggregate root of the lifecycle state machine. It owns every
// legal transition, the actor authorization for each, and the side effects
// (assignment, location reset) that accompany them.
//
// Invariants:
//   - id, customerId and specialtyId are immutable after creation
//   - specialistId is set iff status is accepted, in_progress or completed,
//     except that cancelled orders retain the specialist they had when cancelled
//   - location channels accept writes only while status is accepted or in_progress
//   - any transition back to open clears the specialist assignment and the
//     specialist location
//
// The struct uses private fields to ensure encapsulation; reconstruct
// persisted orders via RestoreOrder so the same validation applies.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	specialistID *kernel.UUID
	specialtyID  specialty.ID
	details      Details

	status Status

	customerLocation   *TrackedPoint
	specialistLocation *TrackedPoint

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new order in Open status for the given customer.
// The specialty must belong to the allowed enumeration and the proposed price,
// when present, must not be negative. The single-open-order-per-customer rule
// is enforced by the command handler inside the store transaction, not here,
// because it spans more than one aggregate instance.
func NewOrder(id, customerID kernel.UUID, specialtyID specialty.ID, details Details) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Open,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setSpecialtyID(specialtyID),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persisted state. It applies the same
// field validation as NewOrder but accepts any valid status and assignment so
// the store can rebuild orders at every lifecycle stage.
func RestoreOrder(
	id, customerID kernel.UUID,
	specialistID *kernel.UUID,
	specialtyID specialty.ID,
	details Details,
	status Status,
	customerLocation, specialistLocation *TrackedPoint,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		customerLocation:   customerLocation,
		specialistLocation: specialistLocation,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		isConstructed:      true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setSpecialtyID(specialtyID),
		o.setDetails(details),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if specialistID != nil {
		if err := specialistID.Validate(); err != nil {
			return nil, err
		}
		sid := *specialistID
		o.specialistID = &sid
	}

	if err := o.status.ValidateCanHaveSpecialist(o.specialistID != nil); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call it when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the owning customer's identifier.
func (o *Order) Customer() kernel.UUID {
	return o.customerID
}

// Specialist returns the claiming specialist's identifier.
// Returns nil while the order is unclaimed.
func (o *Order) Specialist() *kernel.UUID {
	return o.specialistID
}

// Specialty returns the requested service specialty.
func (o *Order) Specialty() specialty.ID {
	return o.specialtyID
}

// Details returns the customer-supplied metadata.
func (o *Order) Details() Details {
	return o.details
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CustomerLocation returns the customer's last reported coordinates, if any.
func (o *Order) CustomerLocation() *TrackedPoint {
	return o.customerLocation
}

// SpecialistLocation returns the specialist's last reported coordinates, if any.
func (o *Order) SpecialistLocation() *TrackedPoint {
	return o.specialistLocation
}

// CreatedAt returns the server creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last successful mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Claim assigns the order to a specialist and moves it to Accepted.
//
// Business rules, checked in this sequence:
//   - the order must still be Open; any other status is a conflict, because
//     from the caller's view another actor already won the order
//   - the specialist's capability set must contain the order's specialty
//
// The caller persists the result with a conditional update on the Open status,
// so of two racing claimants exactly one wins.
func (o *Order) Claim(specialistID kernel.UUID, capabilities specialty.Set) error {
	if err := specialistID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return errs.NewConflictErrorWithCause("order is not open", err)
	}

	if !capabilities.Contains(o.specialtyID) {
		return errs.NewActorIsForbiddenError(specialistID.String(), "claim order with specialty "+o.specialtyID.String())
	}

	o.status = newStatus
	o.specialistID = &specialistID
	o.touch()
	return nil
}

// Release returns a claimed order to the open pool without completing it.
// The actor must be the order's customer or its current specialist; valid only
// from Accepted or InProgress. Releasing clears the specialist assignment and
// the specialist location, so the re-opened order carries no stale tracking.
func (o *Order) Release(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	if !o.isCustomer(actorID) && !o.isSpecialist(actorID) {
		return errs.NewActorIsForbiddenError(actorID.String(), "release order")
	}

	newStatus, err := o.status.Release()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.specialistID = nil
	o.specialistLocation = nil
	o.touch()
	return nil
}

// Start marks the order as in progress: the specialist is on the way.
// Only the current specialist may trigger it, and only from Accepted.
func (o *Order) Start(specialistID kernel.UUID) error {
	if err := specialistID.Validate(); err != nil {
		return err
	}

	if !o.isSpecialist(specialistID) {
		return errs.NewActorIsForbiddenError(specialistID.String(), "start order")
	}

	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Complete marks the order as completed.
// Only the current specialist may trigger it, and only from InProgress.
func (o *Order) Complete(specialistID kernel.UUID) error {
	if err := specialistID.Validate(); err != nil {
		return err
	}

	if !o.isSpecialist(specialistID) {
		return errs.NewActorIsForbiddenError(specialistID.String(), "complete order")
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel withdraws the order. Only the owning customer may cancel, from any
// non-terminal status. The specialist assignment and both location channels
// are left as-is: the cancelled record keeps who was assigned and where they
// were at cancellation time.
func (o *Order) Cancel(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	if !o.isCustomer(customerID) {
		return errs.NewActorIsForbiddenError(customerID.String(), "cancel order")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// ReportSpecialistLocation overwrites the specialist's live coordinates.
// The actor must be the current specialist, and the order must be Accepted or
// InProgress; other statuses fail with an invalid-state error. The order
// status is never altered by a location report.
func (o *Order) ReportSpecialistLocation(actorID kernel.UUID, point kernel.GeoPoint) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	if !o.isSpecialist(actorID) {
		return errs.NewActorIsForbiddenError(actorID.String(), "report specialist location")
	}

	return o.setLocation(&o.specialistLocation, point)
}

// ReportCustomerLocation overwrites the customer's live coordinates.
// The actor must be the owning customer, under the same state gating as
// ReportSpecialistLocation.
func (o *Order) ReportCustomerLocation(actorID kernel.UUID, point kernel.GeoPoint) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	if !o.isCustomer(actorID) {
		return errs.NewActorIsForbiddenError(actorID.String(), "report customer location")
	}

	return o.setLocation(&o.customerLocation, point)
}

func (o *Order) setLocation(target **TrackedPoint, point kernel.GeoPoint) error {
	if !o.status.SupportsLocationUpdates() {
		return errs.NewInvalidStateError("order", string(o.status))
	}

	tracked, err := NewTrackedPoint(point, time.Now().UTC())
	if err != nil {
		return err
	}

	*target = &tracked
	o.touch()
	return nil
}

func (o *Order) isCustomer(actorID kernel.UUID) bool {
	return o.customerID.IsEqual(actorID)
}

func (o *Order) isSpecialist(actorID kernel.UUID) bool {
	return o.specialistID != nil && o.specialistID.IsEqual(actorID)
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setSpecialtyID(specialtyID specialty.ID) error {
	if err := specialtyID.Validate(); err != nil {
		return err
	}
	o.specialtyID = specialtyID
	return nil
}

func (o *Order) setDetails(details Details) error {
	if details.ProposedPrice != nil && *details.ProposedPrice < 0 {
		return errs.NewValueIsOutOfRangeError("proposedPrice", *details.ProposedPrice, 0, "unbounded")
	}
	o.details = details
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
