package config

import (
	"context"

	"github.com/amicly/appearance/internal/domain"
)

// Gateway keeps preferences in the config file. It backs storage=file.
type Gateway struct {
	provider domain.ConfigProvider
}

// NewGateway returns a file-backed preference store.
func NewGateway() *Gateway {
	return &Gateway{provider: NewProvider()}
}

// Get reads key from the config file. Defaults and environment overrides are
// not consulted: an unset preference is reported as absent.
func (g *Gateway) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	lines, err := ReadLines()
	if err != nil {
		return "", false, err
	}

	cfg, err := Parse(lines)
	if err != nil {
		return "", false, err
	}

	value, ok := cfg[key]
	if !ok || value == "" {
		return "", false, nil
	}
	return value, true, nil
}

// Set writes key=value to the config file under the config lock.
func (g *Gateway) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return g.provider.Set(key, value)
}

// Delete removes key from the config file.
func (g *Gateway) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return g.provider.Unset(key)
}

// Close is a no-op; the file is opened per operation.
func (g *Gateway) Close() error {
	return nil
}

var _ domain.PreferenceStore = (*Gateway)(nil)
