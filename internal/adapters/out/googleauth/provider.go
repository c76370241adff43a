// Package googleauth implements the identity provider port on top of Google
// OAuth 2.0. The adapter exchanges the authorization code issued to the client
// for an access token and reads the verified profile from the userinfo endpoint.
package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"servicedesk/internal/core/ports"
	"servicedesk/internal/pkg/errs"
)

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Provider exchanges Google authorization codes for verified identities.
type Provider struct {
	config *oauth2.Config
}

// NewProvider creates a Google identity provider. The redirect URL must match
// the one registered in the Google Cloud console for the client id.
func NewProvider(clientID, clientSecret, redirectURL string) (*Provider, error) {
	if clientID == "" {
		return nil, errs.NewValueIsRequiredError("clientID")
	}
	if clientSecret == "" {
		return nil, errs.NewValueIsRequiredError("clientSecret")
	}
	if redirectURL == "" {
		return nil, errs.NewValueIsRequiredError("redirectURL")
	}

	return &Provider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
	}, nil
}

// AuthCodeURL builds the consent page URL the client is redirected to.
func (p *Provider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades an authorization code for the user's verified identity.
func (p *Provider) Exchange(ctx context.Context, code string) (ports.Identity, error) {
	if code == "" {
		return ports.Identity{}, errs.NewValueIsRequiredError("code")
	}

	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return ports.Identity{}, fmt.Errorf("exchange authorization code: %w", err)
	}

	userInfo, err := p.fetchUserInfo(ctx, token)
	if err != nil {
		return ports.Identity{}, err
	}

	if userInfo.Email == "" {
		return ports.Identity{}, errs.NewValueIsRequiredError("email")
	}

	return ports.Identity{
		Email:     userInfo.Email,
		FirstName: userInfo.GivenName,
		LastName:  userInfo.FamilyName,
	}, nil
}

type googleUserInfo struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

func (p *Provider) fetchUserInfo(ctx context.Context, token *oauth2.Token) (googleUserInfo, error) {
	client := p.config.Client(ctx, token)

	resp, err := client.Get(userInfoURL)
	if err != nil {
		return googleUserInfo{}, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return googleUserInfo{}, fmt.Errorf("fetch user info: unexpected status %d", resp.StatusCode)
	}

	var userInfo googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return googleUserInfo{}, fmt.Errorf("decode user info: %w", err)
	}

	return userInfo, nil
}
