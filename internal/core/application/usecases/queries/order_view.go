// Package queries contains read-only projections of system state.
// Implements the Query side of the CQRS architecture: handlers read from the
// database directly and never mutate anything.
package queries

import (
	"database/sql"
	"strings"
	"time"

	"servicedesk/internal/core/domain/model/kernel"
)

// GeoPointView is a reported coordinate pair with its report time.
type GeoPointView struct {
	Latitude  float64
	Longitude float64
	UpdatedAt time.Time
}

// OrderView is the full order projection returned by every order query.
// Includes display names and phones of both parties so clients never need a
// second roundtrip.
type OrderView struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	CustomerName string

	SpecialtyID   string
	Description   string
	ProposedPrice *float64
	PreferredAt   *time.Time
	AddressText   string

	Status string

	SpecialistID    *kernel.UUID
	SpecialistName  *string
	SpecialistPhone *string

	CustomerLocation   *GeoPointView
	SpecialistLocation *GeoPointView

	CreatedAt time.Time
	UpdatedAt time.Time
}

// orderViewColumns is the SELECT list shared by every order query. Keep in
// sync with scanOrderView.
const orderViewColumns = `
	o.id,
	o.customer_id,
	TRIM(CONCAT(cust.first_name, ' ', cust.last_name)) AS customer_name,
	o.specialty_id,
	o.description,
	o.proposed_price,
	o.preferred_at,
	o.address_text,
	o.status,
	o.specialist_id,
	TRIM(CONCAT(spec.first_name, ' ', spec.last_name)) AS specialist_name,
	spec.phone AS specialist_phone,
	o.customer_lat,
	o.customer_lng,
	o.customer_location_updated_at,
	o.specialist_lat,
	o.specialist_lng,
	o.specialist_location_updated_at,
	o.created_at,
	o.updated_at`

// orderViewJoins joins the two account sides of the order.
const orderViewJoins = `
	JOIN accounts cust ON cust.id = o.customer_id
	LEFT JOIN accounts spec ON spec.id = o.specialist_id`

func scanOrderView(rows *sql.Rows) (OrderView, error) {
	var (
		view OrderView

		id           string
		customerID   string
		specialistID sql.NullString

		proposedPrice sql.NullFloat64
		preferredAt   sql.NullTime
		description   sql.NullString
		addressText   sql.NullString

		specialistName  sql.NullString
		specialistPhone sql.NullString

		custLat, custLng sql.NullFloat64
		custLocUpdatedAt sql.NullTime
		specLat, specLng sql.NullFloat64
		specLocUpdatedAt sql.NullTime
	)

	err := rows.Scan(
		&id,
		&customerID,
		&view.CustomerName,
		&view.SpecialtyID,
		&description,
		&proposedPrice,
		&preferredAt,
		&addressText,
		&view.Status,
		&specialistID,
		&specialistName,
		&specialistPhone,
		&custLat,
		&custLng,
		&custLocUpdatedAt,
		&specLat,
		&specLng,
		&specLocUpdatedAt,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	if view.ID, err = kernel.UUIDFromString(id); err != nil {
		return OrderView{}, err
	}
	if view.CustomerID, err = kernel.UUIDFromString(customerID); err != nil {
		return OrderView{}, err
	}
	if specialistID.Valid {
		sid, idErr := kernel.UUIDFromString(specialistID.String)
		if idErr != nil {
			return OrderView{}, idErr
		}
		view.SpecialistID = &sid
	}

	view.Description = description.String
	view.AddressText = addressText.String
	if proposedPrice.Valid {
		view.ProposedPrice = &proposedPrice.Float64
	}
	if preferredAt.Valid {
		view.PreferredAt = &preferredAt.Time
	}

	if name := strings.TrimSpace(specialistName.String); specialistID.Valid && name != "" {
		view.SpecialistName = &name
	}
	if specialistPhone.Valid && specialistPhone.String != "" {
		view.SpecialistPhone = &specialistPhone.String
	}

	if custLat.Valid && custLng.Valid && custLocUpdatedAt.Valid {
		view.CustomerLocation = &GeoPointView{
			Latitude:  custLat.Float64,
			Longitude: custLng.Float64,
			UpdatedAt: custLocUpdatedAt.Time,
		}
	}
	if specLat.Valid && specLng.Valid && specLocUpdatedAt.Valid {
		view.SpecialistLocation = &GeoPointView{
			Latitude:  specLat.Float64,
			Longitude: specLng.Float64,
			UpdatedAt: specLocUpdatedAt.Time,
		}
	}

	return view, nil
}
