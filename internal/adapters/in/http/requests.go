package http

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator plugs go-playground/validator into echo's Validate hook.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used for request bodies.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

type createOrderRequest struct {
	SpecialtyID   string     `json:"specialtyId" validate:"required"`
	Description   string     `json:"description"`
	ProposedPrice *float64   `json:"proposedPrice"`
	PreferredAt   *time.Time `json:"preferredAt"`
	AddressText   string     `json:"addressText"`
}

type locationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=in_progress completed"`
}

type updateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
}

type specialistProfileRequest struct {
	IsSpecialist          bool     `json:"isSpecialist"`
	SpecialistSpecialties []string `json:"specialistSpecialties"`
	SpecialistCity        string   `json:"specialistCity"`
	SpecialistBio         string   `json:"specialistBio"`
}
