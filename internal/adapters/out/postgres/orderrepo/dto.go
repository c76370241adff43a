// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/core/domain/model/order"
	"servicedesk/internal/core/domain/model/specialty"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its wire string so the conditional status update and the
// query layer share one representation with the API.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index;not null"`
	SpecialistID *uuid.UUID `gorm:"type:uuid;index"`
	SpecialtyID  string     `gorm:"type:varchar(32);index;not null"`
	Status       string     `gorm:"type:varchar(16);index;not null"`

	Description   *string  `gorm:"type:text"`
	ProposedPrice *float64 `gorm:"type:numeric(12,2)"`
	PreferredAt   *time.Time
	AddressText   *string `gorm:"type:text"`

	CustomerLat               *float64 `gorm:"type:double precision"`
	CustomerLng               *float64 `gorm:"type:double precision"`
	CustomerLocationUpdatedAt *time.Time

	SpecialistLat               *float64 `gorm:"type:double precision"`
	SpecialistLng               *float64 `gorm:"type:double precision"`
	SpecialistLocationUpdatedAt *time.Time

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var specialistID *uuid.UUID
	if id := aggregate.Specialist(); id != nil {
		raw := id.Bytes()
		specialistID = &raw
	}

	details := aggregate.Details()

	dto := OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.Customer().Bytes(),
		SpecialistID:  specialistID,
		SpecialtyID:   aggregate.Specialty().String(),
		Status:        aggregate.Status().String(),
		Description:   optionalString(details.Description),
		ProposedPrice: details.ProposedPrice,
		PreferredAt:   details.PreferredAt,
		AddressText:   optionalString(details.AddressText),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}

	if loc := aggregate.CustomerLocation(); loc != nil {
		lat, lng, at := loc.Point().Latitude(), loc.Point().Longitude(), loc.UpdatedAt()
		dto.CustomerLat, dto.CustomerLng, dto.CustomerLocationUpdatedAt = &lat, &lng, &at
	}
	if loc := aggregate.SpecialistLocation(); loc != nil {
		lat, lng, at := loc.Point().Latitude(), loc.Point().Longitude(), loc.UpdatedAt()
		dto.SpecialistLat, dto.SpecialistLng, dto.SpecialistLocationUpdatedAt = &lat, &lng, &at
	}

	return dto
}

// toDomain converts a database row to an order aggregate via RestoreOrder so
// persisted state passes the same validation as freshly created orders.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var specialistID *kernel.UUID
	if dto.SpecialistID != nil {
		sID, specErr := kernel.UUIDFromBytes((*dto.SpecialistID)[:])
		if specErr != nil {
			return nil, specErr
		}
		specialistID = &sID
	}

	customerLocation, err := locationFromColumns(dto.CustomerLat, dto.CustomerLng, dto.CustomerLocationUpdatedAt)
	if err != nil {
		return nil, err
	}

	specialistLocation, err := locationFromColumns(dto.SpecialistLat, dto.SpecialistLng, dto.SpecialistLocationUpdatedAt)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID,
		specialistID,
		specialty.ID(dto.SpecialtyID),
		order.Details{
			Description:   stringValue(dto.Description),
			ProposedPrice: dto.ProposedPrice,
			PreferredAt:   dto.PreferredAt,
			AddressText:   stringValue(dto.AddressText),
		},
		order.Status(dto.Status),
		customerLocation, specialistLocation,
		dto.CreatedAt, dto.UpdatedAt,
	)
}

func locationFromColumns(lat, lng *float64, updatedAt *time.Time) (*order.TrackedPoint, error) {
	if lat == nil || lng == nil || updatedAt == nil {
		return nil, nil
	}

	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}

	tracked, err := order.NewTrackedPoint(point, *updatedAt)
	if err != nil {
		return nil, err
	}

	return &tracked, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
