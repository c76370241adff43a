package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"servicedesk/internal/core/domain/model/kernel"
	"servicedesk/internal/core/ports"
)

// accountIDContextKey is the echo context key the auth middleware stores the
// authenticated account id under.
const accountIDContextKey = "accountID"

// bearerToken extracts the opaque token from the Authorization header.
// Returns an empty string when the header is missing or malformed.
func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// NewAuthMiddleware returns middleware that resolves the bearer token to an
// account id. Expired or unknown tokens get a 401; the resolved id is stored
// in the request context for handlers.
func NewAuthMiddleware(uowFactory ports.UnitOfWorkFactory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := bearerToken(ctx)
			if token == "" {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "authorization required"})
			}

			accountID, err := uowFactory.Create().TokenRepository().
				ResolveAccountID(ctx.Request().Context(), token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid or expired token"})
			}

			ctx.Set(accountIDContextKey, accountID)
			return next(ctx)
		}
	}
}

// authenticatedAccountID reads the account id the auth middleware stored.
func authenticatedAccountID(ctx echo.Context) kernel.UUID {
	id, _ := ctx.Get(accountIDContextKey).(kernel.UUID)
	return id
}
