package order_test

import (
	"testing"
	"time"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/core/domain/model/order"
	"servicedesk/internal/core/domain/model/specialty"
	"servicedesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plumberSet() specialty.Set {
	return specialty.NewSet([]string{"santehnik"})
}

func newOpenOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, specialty.Plumber, order.Details{})
	require.NoError(t, err)
	return o
}

// newClaimedOrder creates an order already claimed by the given specialist.
func newClaimedOrder(t *testing.T, customerID, specialistID kernel.UUID) *order.Order {
	t.Helper()
	o := newOpenOrder(t, customerID)
	require.NoError(t, o.Claim(specialistID, plumberSet()))
	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	t.Run("should create open order with all valid parameters", func(t *testing.T) {
		price := 5000.0
		preferred := time.Now().Add(24 * time.Hour)
		details := order.Details{
			Description:   "leaking kitchen tap",
			ProposedPrice: &price,
			PreferredAt:   &preferred,
			AddressText:   "Abay 10",
		}

		o, err := order.NewOrder(validID, customerID, specialty.Plumber, details)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.Customer().IsEqual(customerID))
		assert.Equal(t, specialty.Plumber, o.Specialty())
		assert.Equal(t, order.Open, o.Status())
		assert.Nil(t, o.Specialist())
		assert.Nil(t, o.CustomerLocation())
		assert.Nil(t, o.SpecialistLocation())
		assert.Equal(t, details, o.Details())
		assert.False(t, o.CreatedAt().IsZero())
		assert.False(t, o.UpdatedAt().IsZero())
	})

	t.Run("should fail with invalid order id", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, customerID, specialty.Plumber, order.Details{})

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with invalid customer id", func(t *testing.T) {
		var invalidCustomer kernel.UUID

		o, err := order.NewOrder(validID, invalidCustomer, specialty.Plumber, order.Details{})

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with specialty outside the enumeration", func(t *testing.T) {
		o, err := order.NewOrder(validID, customerID, specialty.ID("astronaut"), order.Details{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
	})

	t.Run("should fail with negative proposed price", func(t *testing.T) {
		price := -100.0

		o, err := order.NewOrder(validID, customerID, specialty.Plumber, order.Details{ProposedPrice: &price})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, o)
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		var invalidID, invalidCustomer kernel.UUID

		o, err := order.NewOrder(invalidID, invalidCustomer, specialty.ID("nope"), order.Details{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "specialtyId")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order is valid", func(t *testing.T) {
		o := newOpenOrder(t, kernel.NewUUID())
		require.NoError(t, o.Validate())
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is invalid", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Claim(t *testing.T) {
	customerID := kernel.NewUUID()
	specialistID := kernel.NewUUID()

	t.Run("specialist with matching capability claims open order", func(t *testing.T) {
		o := newOpenOrder(t, customerID)

		err := o.Claim(specialistID, plumberSet())

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())
		require.NotNil(t, o.Specialist())
		assert.True(t, o.Specialist().IsEqual(specialistID))
	})

	t.Run("capability set without the specialty is forbidden", func(t *testing.T) {
		o := newOpenOrder(t, customerID)

		err := o.Claim(specialistID, specialty.NewSet([]string{"elektrik"}))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrActorIsForbidden)
		assert.Equal(t, order.Open, o.Status())
		assert.Nil(t, o.Specialist())
	})

	t.Run("empty capability set is forbidden", func(t *testing.T) {
		o := newOpenOrder(t, customerID)

		err := o.Claim(specialistID, specialty.Set{})

		require.ErrorIs(t, err, errs.ErrActorIsForbidden)
	})

	t.Run("claiming a non-open order is a conflict", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)
		rival := kernel.NewUUID()

		err := o.Claim(rival, plumberSet())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrConflict)
		// The winner's assignment is untouched.
		assert.True(t, o.Specialist().IsEqual(specialistID))
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("invalid specialist id is rejected", func(t *testing.T) {
		o := newOpenOrder(t, customerID)
		var invalid kernel.UUID

		err := o.Claim(invalid, plumberSet())

		require.Error(t, err)
		assert.Equal(t, order.Open, o.Status())
	})
}

func TestOrder_Release(t *testing.T) {
	customerID := kernel.NewUUID()
	specialistID := kernel.NewUUID()

	t.Run("specialist releases accepted order", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)

		err := o.Release(specialistID)

		require.NoError(t, err)
		assert.Equal(t, order.Open, o.Status())
		assert.Nil(t, o.Specialist())
		assert.Nil(t, o.SpecialistLocation())
	})

	t.Run("customer releases in-progress order and specialist location is cleared", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)
		require.NoError(t, o.Start(specialistID))

		point, _ := kernel.NewGeoPoint(55.75, 37.61)
		require.NoError(t, o.ReportSpecialistLocation(specialistID, point))
		require.NotNil(t, o.SpecialistLocation())

		err := o.Release(customerID)

		require.NoError(t, err)
		assert.Equal(t, order.Open, o.Status())
		assert.Nil(t, o.Specialist())
		assert.Nil(t, o.SpecialistLocation())
	})

	t.Run("customer location survives a release", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)
		point, _ := kernel.NewGeoPoint(55.75, 37.61)
		require.NoError(t, o.ReportCustomerLocation(customerID, point))

		require.NoError(t, o.Release(specialistID))

		assert.NotNil(t, o.CustomerLocation())
	})

	t.Run("stranger may not release", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)

		err := o.Release(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrActorIsForbidden)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("releasing an open order is an invalid transition", func(t *testing.T) {
		o := newOpenOrder(t, customerID)

		err := o.Release(customerID)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Open, o.Status())
	})
}

func TestOrder_Start(t *testing.T) {
	customerID := kernel.NewUUID()
	specialistID := kernel.NewUUID()

	t.Run("current specialist starts accepted order", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)

		err := o.Start(specialistID)

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("customer may not start", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)

		err := o.Start(customerID)

		require.ErrorIs(t, err, errs.ErrActorIsForbidden)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("starting an in-progress order is an invalid transition", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)
		require.NoError(t, o.Start(specialistID))

		err := o.Start(specialistID)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.InProgress, o.Status())
	})
}

func TestOrder_Complete(t *testing.T) {
	customerID := kernel.NewUUID()
	specialistID := kernel.NewUUID()

	t.Run("current specialist completes in-progress order", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)
		require.NoError(t, o.Start(specialistID))

		err := o.Complete(specialistID)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
		// Assignment survives completion.
		require.NotNil(t, o.Specialist())
		assert.True(t, o.Specialist().IsEqual(specialistID))
	})

	t.Run("completing from accepted is an invalid transition", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)

		err := o.Complete(specialistID)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("customer may not complete", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)
		require.NoError(t, o.Start(specialistID))

		err := o.Complete(customerID)

		require.ErrorIs(t, err, errs.ErrActorIsForbidden)
		assert.Equal(t, order.InProgress, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	customerID := kernel.NewUUID()
	specialistID := kernel.NewUUID()

	t.Run("customer cancels open order", func(t *testing.T) {
		o := newOpenOrder(t, customerID)

		err := o.Cancel(customerID)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("cancel keeps specialist assignment and locations", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)
		require.NoError(t, o.Start(specialistID))
		point, _ := kernel.NewGeoPoint(55.75, 37.61)
		require.NoError(t, o.ReportSpecialistLocation(specialistID, point))

		err := o.Cancel(customerID)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		require.NotNil(t, o.Specialist())
		assert.True(t, o.Specialist().IsEqual(specialistID))
		assert.NotNil(t, o.SpecialistLocation())
	})

	t.Run("specialist may not cancel", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)

		err := o.Cancel(specialistID)

		require.ErrorIs(t, err, errs.ErrActorIsForbidden)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("cancelling a completed order is an invalid transition", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)
		require.NoError(t, o.Start(specialistID))
		require.NoError(t, o.Complete(specialistID))

		err := o.Cancel(customerID)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("cancelling twice is an invalid transition", func(t *testing.T) {
		o := newOpenOrder(t, customerID)
		require.NoError(t, o.Cancel(customerID))

		err := o.Cancel(customerID)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_ReportLocation(t *testing.T) {
	customerID := kernel.NewUUID()
	specialistID := kernel.NewUUID()
	point, _ := kernel.NewGeoPoint(55.75, 37.61)

	t.Run("specialist reports location on accepted order", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)

		err := o.ReportSpecialistLocation(specialistID, point)

		require.NoError(t, err)
		require.NotNil(t, o.SpecialistLocation())
		assert.InDelta(t, 55.75, o.SpecialistLocation().Point().Latitude(), 0.000001)
		assert.False(t, o.SpecialistLocation().UpdatedAt().IsZero())
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("customer reports location on in-progress order", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)
		require.NoError(t, o.Start(specialistID))

		err := o.ReportCustomerLocation(customerID, point)

		require.NoError(t, err)
		require.NotNil(t, o.CustomerLocation())
		assert.Nil(t, o.SpecialistLocation())
	})

	t.Run("each report overwrites the previous value", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)
		require.NoError(t, o.ReportSpecialistLocation(specialistID, point))

		next, _ := kernel.NewGeoPoint(43.25, 76.95)
		require.NoError(t, o.ReportSpecialistLocation(specialistID, next))

		assert.InDelta(t, 43.25, o.SpecialistLocation().Point().Latitude(), 0.000001)
	})

	t.Run("reporting on an open order is an invalid state", func(t *testing.T) {
		o := newOpenOrder(t, customerID)

		err := o.ReportCustomerLocation(customerID, point)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Nil(t, o.CustomerLocation())
	})

	t.Run("reporting after completion is an invalid state", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)
		require.NoError(t, o.Start(specialistID))
		require.NoError(t, o.Complete(specialistID))

		err := o.ReportSpecialistLocation(specialistID, point)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("reporting after cancellation is an invalid state", func(t *testing.T) {
		o := newOpenOrder(t, customerID)
		require.NoError(t, o.Cancel(customerID))

		err := o.ReportCustomerLocation(customerID, point)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("wrong actor is forbidden before state is considered", func(t *testing.T) {
		o := newClaimedOrder(t, customerID, specialistID)

		err := o.ReportSpecialistLocation(customerID, point)
		require.ErrorIs(t, err, errs.ErrActorIsForbidden)

		err = o.ReportCustomerLocation(specialistID, point)
		require.ErrorIs(t, err, errs.ErrActorIsForbidden)
	})
}

func TestRestoreOrder(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	specialistID := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("restores claimed order", func(t *testing.T) {
		point, _ := kernel.NewGeoPoint(55.75, 37.61)
		tracked, _ := order.NewTrackedPoint(point, now)

		o, err := order.RestoreOrder(
			orderID, customerID, &specialistID,
			specialty.Plumber, order.Details{Description: "fix sink"},
			order.Accepted, nil, &tracked, now, now,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Accepted, o.Status())
		require.NotNil(t, o.Specialist())
		assert.True(t, o.Specialist().IsEqual(specialistID))
		require.NotNil(t, o.SpecialistLocation())
		assert.Equal(t, now, o.CreatedAt())
	})

	t.Run("rejects open order with specialist assigned", func(t *testing.T) {
		_, err := order.RestoreOrder(
			orderID, customerID, &specialistID,
			specialty.Plumber, order.Details{},
			order.Open, nil, nil, now, now,
		)

		require.Error(t, err)
	})

	t.Run("rejects accepted order without specialist", func(t *testing.T) {
		_, err := order.RestoreOrder(
			orderID, customerID, nil,
			specialty.Plumber, order.Details{},
			order.Accepted, nil, nil, now, now,
		)

		require.Error(t, err)
	})

	t.Run("restores cancelled order with or without specialist", func(t *testing.T) {
		withSpecialist, err := order.RestoreOrder(
			orderID, customerID, &specialistID,
			specialty.Plumber, order.Details{},
			order.Cancelled, nil, nil, now, now,
		)
		require.NoError(t, err)
		require.NotNil(t, withSpecialist.Specialist())

		withoutSpecialist, err := order.RestoreOrder(
			orderID, customerID, nil,
			specialty.Plumber, order.Details{},
			order.Cancelled, nil, nil, now, now,
		)
		require.NoError(t, err)
		assert.Nil(t, withoutSpecialist.Specialist())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			orderID, customerID, nil,
			specialty.Plumber, order.Details{},
			order.Status("pending"), nil, nil, now, now,
		)

		require.Error(t, err)
	})
}

func TestNewTrackedPoint(t *testing.T) {
	t.Run("valid point", func(t *testing.T) {
		point, _ := kernel.NewGeoPoint(55.75, 37.61)
		now := time.Now().UTC()

		tracked, err := order.NewTrackedPoint(point, now)

		require.NoError(t, err)
		assert.True(t, tracked.Point().IsEqual(point))
		assert.Equal(t, now, tracked.UpdatedAt())
	})

	t.Run("zero point is rejected", func(t *testing.T) {
		var point kernel.GeoPoint

		_, err := order.NewTrackedPoint(point, time.Now())

		require.Error(t, err)
	})
}

// End-to-end walkthrough of the happy path:
// create -> claim -> start -> report location -> complete.
func TestOrder_Lifecycle(t *testing.T) {
	customerID := kernel.NewUUID()
	specialistID := kernel.NewUUID()

	o, err := order.NewOrder(kernel.NewUUID(), customerID, specialty.Plumber, order.Details{})
	require.NoError(t, err)
	assert.Equal(t, order.Open, o.Status())
	assert.Nil(t, o.Specialist())

	require.NoError(t, o.Claim(specialistID, plumberSet()))
	assert.Equal(t, order.Accepted, o.Status())

	require.NoError(t, o.Start(specialistID))
	assert.Equal(t, order.InProgress, o.Status())

	point, _ := kernel.NewGeoPoint(55.75, 37.61)
	require.NoError(t, o.ReportSpecialistLocation(specialistID, point))
	assert.InDelta(t, 55.75, o.SpecialistLocation().Point().Latitude(), 0.000001)

	require.NoError(t, o.Complete(specialistID))
	assert.Equal(t, order.Completed, o.Status())

	err = o.ReportSpecialistLocation(specialistID, point)
	require.ErrorIs(t, err, errs.ErrInvalidState)
}
