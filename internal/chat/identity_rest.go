package chat

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/StormyDevil/azure-communication-services-solution/internal/acs"
)

const identityAPIVersion = "2023-10-01"

// IdentityRESTClient issues identities and tokens through the signed ACS
// transport (identity calls authenticate with the resource key, not a
// user token).
type IdentityRESTClient struct {
	transport *acs.Client
}

// NewIdentityRESTClient creates an identity client over the given transport.
func NewIdentityRESTClient(transport *acs.Client) *IdentityRESTClient {
	return &IdentityRESTClient{transport: transport}
}

type createIdentityPayload struct {
	CreateTokenWithScopes []string `json:"createTokenWithScopes"`
}

type createIdentityResponse struct {
	Identity struct {
		ID string `json:"id"`
	} `json:"identity"`
	AccessToken struct {
		Token     string    `json:"token"`
		ExpiresOn time.Time `json:"expiresOn"`
	} `json:"accessToken"`
}

// CreateUserAndToken implements IdentityClient against POST /identities.
func (c *IdentityRESTClient) CreateUserAndToken(ctx context.Context, scopes []string) (UserToken, error) {
	resp, err := c.transport.Do(ctx, http.MethodPost,
		"/identities?api-version="+identityAPIVersion,
		createIdentityPayload{CreateTokenWithScopes: scopes})
	if err != nil {
		return UserToken{}, err
	}

	var parsed createIdentityResponse
	if err := resp.Decode(&parsed); err != nil {
		return UserToken{}, err
	}
	if parsed.Identity.ID == "" || parsed.AccessToken.Token == "" {
		return UserToken{}, fmt.Errorf("identity response missing user or token")
	}

	return UserToken{
		UserID:    parsed.Identity.ID,
		Token:     parsed.AccessToken.Token,
		ExpiresOn: parsed.AccessToken.ExpiresOn,
	}, nil
}

var _ IdentityClient = (*IdentityRESTClient)(nil)
