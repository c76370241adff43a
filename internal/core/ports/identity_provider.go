package ports

import (
	"context"
)

// Identity is the profile an external identity provider vouches for.
type Identity struct {
	Email     string
	FirstName string
	LastName  string
}

// IdentityProvider verifies a sign-in credential with an external provider
// (Google OAuth) and returns the verified identity.
type IdentityProvider interface {
	// AuthCodeURL builds the provider's consent page URL that starts the
	// sign-in flow. The state is echoed back on the callback.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for the user's verified identity.
	Exchange(ctx context.Context, code string) (Identity, error)
}
