package http

import (
	"time"

	"servicedesk/internal/core/application/usecases/queries"
)

// orderResponse is the wire shape of a single order. Coordinates are flattened
// into per-channel fields the way mobile clients consume them.
type orderResponse struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`

	SpecialtyID   string     `json:"specialtyId"`
	Description   string     `json:"description"`
	ProposedPrice *float64   `json:"proposedPrice"`
	PreferredAt   *time.Time `json:"preferredAt"`
	AddressText   string     `json:"addressText"`

	Status string `json:"status"`

	SpecialistID    *string `json:"specialistId"`
	SpecialistName  *string `json:"specialistName"`
	SpecialistPhone *string `json:"specialistPhone"`

	CustomerLatitude            *float64   `json:"customerLatitude"`
	CustomerLongitude           *float64   `json:"customerLongitude"`
	CustomerLocationUpdatedAt   *time.Time `json:"customerLocationUpdatedAt"`
	SpecialistLatitude          *float64   `json:"specialistLatitude"`
	SpecialistLongitude         *float64   `json:"specialistLongitude"`
	SpecialistLocationUpdatedAt *time.Time `json:"specialistLocationUpdatedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type singleOrderResponse struct {
	Order orderResponse `json:"order"`
}

type orderListResponse struct {
	Orders []orderResponse `json:"orders"`
}

func fromOrderView(view queries.OrderView) orderResponse {
	resp := orderResponse{
		ID:              view.ID.String(),
		CustomerID:      view.CustomerID.String(),
		CustomerName:    view.CustomerName,
		SpecialtyID:     view.SpecialtyID,
		Description:     view.Description,
		ProposedPrice:   view.ProposedPrice,
		PreferredAt:     view.PreferredAt,
		AddressText:     view.AddressText,
		Status:          view.Status,
		SpecialistName:  view.SpecialistName,
		SpecialistPhone: view.SpecialistPhone,
		CreatedAt:       view.CreatedAt,
		UpdatedAt:       view.UpdatedAt,
	}

	if view.SpecialistID != nil {
		id := view.SpecialistID.String()
		resp.SpecialistID = &id
	}
	if loc := view.CustomerLocation; loc != nil {
		lat, lng, at := loc.Latitude, loc.Longitude, loc.UpdatedAt
		resp.CustomerLatitude = &lat
		resp.CustomerLongitude = &lng
		resp.CustomerLocationUpdatedAt = &at
	}
	if loc := view.SpecialistLocation; loc != nil {
		lat, lng, at := loc.Latitude, loc.Longitude, loc.UpdatedAt
		resp.SpecialistLatitude = &lat
		resp.SpecialistLongitude = &lng
		resp.SpecialistLocationUpdatedAt = &at
	}

	return resp
}

func fromOrderViews(views []queries.OrderView) orderListResponse {
	orders := make([]orderResponse, len(views))
	for i, view := range views {
		orders[i] = fromOrderView(view)
	}
	return orderListResponse{Orders: orders}
}

// profileResponse is the wire shape of the authenticated account.
type profileResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Phone        string    `json:"phone"`
	City         string    `json:"city"`
	Bio          string    `json:"bio"`
	Rating       float64   `json:"rating"`
	IsSpecialist bool      `json:"isSpecialist"`
	Specialties  []string  `json:"specialties"`
	CreatedAt    time.Time `json:"createdAt"`
}

func fromAccountView(view queries.AccountView) profileResponse {
	specialties := view.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	return profileResponse{
		ID:           view.ID.String(),
		Email:        view.Email,
		FirstName:    view.FirstName,
		LastName:     view.LastName,
		Phone:        view.Phone,
		City:         view.City,
		Bio:          view.Bio,
		Rating:       view.Rating,
		IsSpecialist: view.IsSpecialist,
		Specialties:  specialties,
		CreatedAt:    view.CreatedAt,
	}
}

type specialistListResponse struct {
	Specialists []profileResponse `json:"specialists"`
}

func fromAccountViews(views []queries.AccountView) specialistListResponse {
	specialists := make([]profileResponse, len(views))
	for i, view := range views {
		specialists[i] = fromAccountView(view)
	}
	return specialistListResponse{Specialists: specialists}
}

type specialtyResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type signInResponse struct {
	Token     string    `json:"token"`
	AccountID string    `json:"accountId"`
	ExpiresAt time.Time `json:"expiresAt"`
}
