package config

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/StormyDevil/azure-communication-services-solution/internal/secrets"
)

// fakeSource is an in-memory secret store; a nil map simulates an
// unreachable vault.
type fakeSource struct {
	values map[string]string
	calls  int
}

func (f *fakeSource) GetSecret(_ context.Context, name string) (string, error) {
	f.calls++
	if f.values == nil {
		return "", errors.New("vault unreachable")
	}
	v, ok := f.values[name]
	if !ok {
		return "", errors.New("secret not found")
	}
	return v, nil
}

func factoryFor(src *fakeSource) SourceFactory {
	return func(string) (secrets.Source, error) { return src, nil }
}

func TestNew_EnvironmentWinsOverVault(t *testing.T) {
	req := require.New(t)

	t.Setenv(EnvConnectionString, "endpoint=https://x;accesskey=y")
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvKeyVaultURL, "https://vault.vault.azure.net")

	cfg := New()
	src := &fakeSource{values: map[string]string{
		SecretConnectionString: "endpoint=https://vault;accesskey=z",
		SecretEndpoint:         "https://vault",
	}}
	cfg.ResolveACS(context.Background(), factoryFor(src), zap.NewNop())

	req.Equal("endpoint=https://x;accesskey=y", cfg.ACS.ConnectionString)
	req.Empty(cfg.ACS.Endpoint)
	req.Zero(src.calls, "vault must not be consulted when the env provides the secret")
}

func TestNew_AbsentEverywhere(t *testing.T) {
	req := require.New(t)

	t.Setenv(EnvConnectionString, "")
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvKeyVaultURL, "")

	cfg := New()
	cfg.ResolveACS(context.Background(), factoryFor(&fakeSource{}), zap.NewNop())

	req.Empty(cfg.ACS.ConnectionString)
	req.Empty(cfg.ACS.Endpoint)
}

func TestResolveACS_VaultFallback(t *testing.T) {
	req := require.New(t)

	t.Setenv(EnvConnectionString, "")
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvKeyVaultURL, "https://vault.vault.azure.net")

	cfg := New()
	src := &fakeSource{values: map[string]string{
		SecretConnectionString: "endpoint=https://vault;accesskey=z",
		SecretEndpoint:         "https://vault",
	}}
	cfg.ResolveACS(context.Background(), factoryFor(src), zap.NewNop())

	req.Equal("endpoint=https://vault;accesskey=z", cfg.ACS.ConnectionString)
	req.Equal("https://vault", cfg.ACS.Endpoint)
}

func TestResolveACS_VaultUnreachableIsNotFatal(t *testing.T) {
	req := require.New(t)

	t.Setenv(EnvConnectionString, "")
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvKeyVaultURL, "https://vault.vault.azure.net")

	cfg := New()
	cfg.ResolveACS(context.Background(), factoryFor(&fakeSource{values: nil}), zap.NewNop())

	req.Empty(cfg.ACS.ConnectionString)
	req.Empty(cfg.ACS.Endpoint)
}

func TestResolveACS_FactoryFailureIsNotFatal(t *testing.T) {
	req := require.New(t)

	t.Setenv(EnvConnectionString, "")
	t.Setenv(EnvKeyVaultURL, "https://vault.vault.azure.net")

	cfg := New()
	cfg.ResolveACS(context.Background(), func(string) (secrets.Source, error) {
		return nil, errors.New("no ambient credential")
	}, zap.NewNop())

	req.Empty(cfg.ACS.ConnectionString)
}

func TestNew_Defaults(t *testing.T) {
	req := require.New(t)

	t.Setenv("API_PORT", "")
	t.Setenv("MESSAGE_BATCH_SIZE", "")

	cfg := New()
	req.Equal("8080", cfg.API.Port)
	req.Equal(100, cfg.Worker.BatchSize)
	req.Equal(4, cfg.Worker.MaxWorkers)
}
