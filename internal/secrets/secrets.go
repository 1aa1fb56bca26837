// Package secrets exposes a minimal interface for fetching named secrets
// from an external secret store.
package secrets

import "context"

// Source is the contract for a secret store implementation.
type Source interface {
	// GetSecret returns the current value of the named secret.
	GetSecret(ctx context.Context, name string) (string, error)
}
