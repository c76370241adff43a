package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"servicedesk/internal/pkg/errs"
)

// errorResponse is the JSON error body returned by every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError translates a domain error into an HTTP response.
//
// Mapping: validation failures and state gating are 400, missing objects 404,
// wrong-actor failures 403, lost races and illegal transitions 409. Anything
// unrecognized is a 500 with a generic message so internals never leak.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidState):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})

	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})

	case errors.Is(err, errs.ErrActorIsForbidden):
		return ctx.JSON(http.StatusForbidden, errorResponse{Error: err.Error()})

	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	}

	return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
