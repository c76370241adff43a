// Package http is the inbound HTTP adapter. Handlers translate echo requests
// into commands and queries and map domain errors onto status codes; no
// business rules live here.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"servicedesk/internal/core/application/usecases/commands"
	"servicedesk/internal/core/application/usecases/queries"
	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/core/domain/model/specialty"
	"servicedesk/internal/core/ports"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder          commands.CreateOrderCommandHandler
	ClaimOrder           commands.ClaimOrderCommandHandler
	ReleaseOrder         commands.ReleaseOrderCommandHandler
	StartOrder           commands.StartOrderCommandHandler
	CompleteOrder        commands.CompleteOrderCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	ReportLocation       commands.ReportLocationCommandHandler
	UpdateProfile        commands.UpdateProfileCommandHandler
	SetSpecialistProfile commands.SetSpecialistProfileCommandHandler
	SignIn               commands.SignInCommandHandler
	Logout               commands.LogoutCommandHandler

	GetOrder             queries.GetOrderQueryHandler
	ListOpenOrders       queries.ListOpenOrdersQueryHandler
	ListCustomerOrders   queries.ListCustomerOrdersQueryHandler
	ListSpecialistOrders queries.ListSpecialistOrdersQueryHandler
	GetAccount           queries.GetAccountQueryHandler
	ListSpecialists      queries.ListSpecialistsQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	identity ports.IdentityProvider
}

// NewServer creates the HTTP server facade over the use case handlers.
func NewServer(handlers Handlers, identity ports.IdentityProvider) *Server {
	return &Server{handlers: handlers, identity: identity}
}

// RegisterRoutes mounts all routes on the echo instance. Everything except
// health, the specialty catalog and the OAuth endpoints requires a bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.Validator = NewRequestValidator()

	e.GET("/health", s.Health)
	e.GET("/specialties", s.GetSpecialties)
	e.GET("/auth/google", s.GoogleSignIn)
	e.GET("/auth/google/callback", s.GoogleCallback)

	authed := e.Group("", auth)
	authed.POST("/auth/logout", s.Logout)

	authed.GET("/profile/me", s.GetProfile)
	authed.PUT("/profile/me", s.UpdateProfile)
	authed.PATCH("/profile/me/specialist", s.SetSpecialistProfile)
	authed.GET("/profile/specialists", s.ListSpecialists)

	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders", s.ListOrders)
	authed.GET("/orders/:id", s.GetOrderByID)
	authed.PATCH("/orders/:id/accept", s.AcceptOrder)
	authed.PATCH("/orders/:id/release", s.ReleaseOrder)
	authed.PATCH("/orders/:id/cancel", s.CancelOrder)
	authed.PATCH("/orders/:id/status", s.SetOrderStatus)
	authed.PATCH("/orders/:id/customer-location", s.ReportCustomerLocation)
	authed.PATCH("/orders/:id/specialist-location", s.ReportSpecialistLocation)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetSpecialties handles GET /specialties - returns the service catalog.
func (s *Server) GetSpecialties(ctx echo.Context) error {
	all := specialty.All()
	response := make([]specialtyResponse, len(all))
	for i, id := range all {
		response[i] = specialtyResponse{ID: id.String(), Label: id.Label()}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GoogleSignIn handles GET /auth/google - starts the sign-in flow by sending
// the client to the provider's consent page. An optional state query param is
// carried through to the callback.
func (s *Server) GoogleSignIn(ctx echo.Context) error {
	return ctx.Redirect(http.StatusFound, s.identity.AuthCodeURL(ctx.QueryParam("state")))
}

// GoogleCallback handles GET /auth/google/callback - exchanges the OAuth code
// for an access token, creating the account on first sign-in.
func (s *Server) GoogleCallback(ctx echo.Context) error {
	cmd, err := commands.NewSignInCommand(ctx.QueryParam("code"))
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.SignIn.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, signInResponse{
		Token:     result.Token,
		AccountID: result.AccountID.String(),
		ExpiresAt: result.ExpiresAt,
	})
}

// Logout handles POST /auth/logout - revokes the presented token.
func (s *Server) Logout(ctx echo.Context) error {
	cmd, err := commands.NewLogoutCommand(bearerToken(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.Logout.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProfile handles GET /profile/me.
func (s *Server) GetProfile(ctx echo.Context) error {
	query, err := queries.NewGetAccountQuery(authenticatedAccountID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.handlers.GetAccount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAccountView(view))
}

// UpdateProfile handles PUT /profile/me - updates the account's contact
// details (name, phone, city).
func (s *Server) UpdateProfile(ctx echo.Context) error {
	var req updateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	cmd, err := commands.NewUpdateProfileCommand(
		authenticatedAccountID(ctx),
		req.FirstName,
		req.LastName,
		req.Phone,
		req.City,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.UpdateProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.GetProfile(ctx)
}

// ListSpecialists handles GET /profile/specialists - the public specialist
// directory, best rated first, optionally filtered by ?city=.
func (s *Server) ListSpecialists(ctx echo.Context) error {
	query := queries.NewListSpecialistsQuery(ctx.QueryParam("city"))

	views, err := s.handlers.ListSpecialists.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAccountViews(views))
}

// SetSpecialistProfile handles PATCH /profile/me/specialist - toggles
// specialist mode and replaces the capability set.
func (s *Server) SetSpecialistProfile(ctx echo.Context) error {
	var req specialistProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	cmd, err := commands.NewSetSpecialistProfileCommand(
		authenticatedAccountID(ctx),
		req.IsSpecialist,
		req.SpecialistSpecialties,
		req.SpecialistCity,
		req.SpecialistBio,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.SetSpecialistProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.GetProfile(ctx)
}

// CreateOrder handles POST /orders - publishes a new order for the customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		authenticatedAccountID(ctx),
		req.SpecialtyID,
		req.Description,
		req.ProposedPrice,
		req.PreferredAt,
		req.AddressText,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusCreated)
}

// ListOrders handles GET /orders. Without flags it is the open-order feed
// filtered by the caller's capabilities; ?my=1 lists the caller's orders as
// customer, ?asSpecialist=1 the orders assigned to them.
func (s *Server) ListOrders(ctx echo.Context) error {
	accountID := authenticatedAccountID(ctx)

	var (
		views []queries.OrderView
		err   error
	)

	switch {
	case boolQueryParam(ctx, "asSpecialist"):
		var query queries.ListSpecialistOrdersQuery
		if query, err = queries.NewListSpecialistOrdersQuery(accountID); err == nil {
			views, err = s.handlers.ListSpecialistOrders.Handle(ctx.Request().Context(), query)
		}
	case boolQueryParam(ctx, "my"):
		var query queries.ListCustomerOrdersQuery
		if query, err = queries.NewListCustomerOrdersQuery(accountID); err == nil {
			views, err = s.handlers.ListCustomerOrders.Handle(ctx.Request().Context(), query)
		}
	default:
		var query queries.ListOpenOrdersQuery
		if query, err = queries.NewListOpenOrdersQuery(accountID); err == nil {
			views, err = s.handlers.ListOpenOrders.Handle(ctx.Request().Context(), query)
		}
	}
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromOrderViews(views))
}

// GetOrderByID handles GET /orders/:id.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// AcceptOrder handles PATCH /orders/:id/accept - the specialist claims an
// open order. Exactly one concurrent claimer wins; the rest get a 409.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID, actorID kernel.UUID) error {
		cmd, err := commands.NewClaimOrderCommand(orderID, actorID)
		if err != nil {
			return err
		}
		return s.handlers.ClaimOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// ReleaseOrder handles PATCH /orders/:id/release - either party returns the
// order to the open pool.
func (s *Server) ReleaseOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID, actorID kernel.UUID) error {
		cmd, err := commands.NewReleaseOrderCommand(orderID, actorID)
		if err != nil {
			return err
		}
		return s.handlers.ReleaseOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles PATCH /orders/:id/cancel - the customer closes the order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.transition(ctx, func(orderID, actorID kernel.UUID) error {
		cmd, err := commands.NewCancelOrderCommand(orderID, actorID)
		if err != nil {
			return err
		}
		return s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// SetOrderStatus handles PATCH /orders/:id/status - the assigned specialist
// moves the order to in_progress or completed.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	var req setStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	return s.transition(ctx, func(orderID, actorID kernel.UUID) error {
		if req.Status == "in_progress" {
			cmd, err := commands.NewStartOrderCommand(orderID, actorID)
			if err != nil {
				return err
			}
			return s.handlers.StartOrder.Handle(ctx.Request().Context(), cmd)
		}

		cmd, err := commands.NewCompleteOrderCommand(orderID, actorID)
		if err != nil {
			return err
		}
		return s.handlers.CompleteOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// ReportCustomerLocation handles PATCH /orders/:id/customer-location.
func (s *Server) ReportCustomerLocation(ctx echo.Context) error {
	return s.reportLocation(ctx, commands.CustomerRole)
}

// ReportSpecialistLocation handles PATCH /orders/:id/specialist-location.
func (s *Server) ReportSpecialistLocation(ctx echo.Context) error {
	return s.reportLocation(ctx, commands.SpecialistRole)
}

func (s *Server) reportLocation(ctx echo.Context, role commands.LocationRole) error {
	var req locationRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	return s.transition(ctx, func(orderID, actorID kernel.UUID) error {
		cmd, err := commands.NewReportLocationCommand(orderID, actorID, role, *req.Latitude, *req.Longitude)
		if err != nil {
			return err
		}
		return s.handlers.ReportLocation.Handle(ctx.Request().Context(), cmd)
	})
}

// transition runs a state-changing operation for the authenticated actor and
// responds with the refreshed order projection.
func (s *Server) transition(ctx echo.Context, run func(orderID, actorID kernel.UUID) error) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := run(orderID, authenticatedAccountID(ctx)); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID, status int) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, singleOrderResponse{Order: fromOrderView(view)})
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func boolQueryParam(ctx echo.Context, name string) bool {
	value := ctx.QueryParam(name)
	return value == "1" || value == "true"
}
