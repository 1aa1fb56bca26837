// Package keyvault is an Azure Key Vault implementation of the secret
// source interface, authenticating with the ambient managed credential.
package keyvault

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"

	"github.com/StormyDevil/azure-communication-services-solution/internal/secrets"
)

// Client fetches secrets from a single Key Vault.
type Client struct {
	vault *azsecrets.Client
}

// New creates a Key Vault client for the given vault URL using the default
// credential chain (environment, workload identity, managed identity, CLI).
func New(vaultURL string) (*Client, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("acquire azure credential: %w", err)
	}

	vault, err := azsecrets.NewClient(vaultURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create key vault client: %w", err)
	}

	return &Client{vault: vault}, nil
}

// GetSecret returns the latest version of the named secret.
func (c *Client) GetSecret(ctx context.Context, name string) (string, error) {
	resp, err := c.vault.GetSecret(ctx, name, "", nil)
	if err != nil {
		return "", fmt.Errorf("get secret %q: %w", name, err)
	}
	if resp.Value == nil {
		return "", fmt.Errorf("secret %q has no value", name)
	}
	return *resp.Value, nil
}

var _ secrets.Source = (*Client)(nil)
