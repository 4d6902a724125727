package connector

import (
	"context"
	"fmt"
	"sync"
)

var globalManager = &manager{
	providers: make(map[string]Provider),
}

type manager struct {
	providers map[string]Provider
	mu        sync.RWMutex
}

// Register makes a provider available under the given driver name. The
// postgres and mysql providers register themselves in init.
func Register(name string, provider Provider) {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	globalManager.providers[name] = provider
}

// New returns a connector for a registered driver name.
func New(name string, config Config) (Connector, error) {
	globalManager.mu.RLock()
	provider, ok := globalManager.providers[name]
	globalManager.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("provider %s not registered", name)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config for %s: %w", name, err)
	}
	return &standardConnector{provider: provider, config: config}, nil
}

type standardConnector struct {
	provider Provider
	config   Config
}

func (c *standardConnector) Connect(ctx context.Context) (Connection, error) {
	cfg := c.config
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	if cfg.Retry == nil {
		return c.provider.Connect(ctx, cfg)
	}

	var conn Connection
	err := retryConnect(ctx, cfg.Retry, func(ctx context.Context) error {
		var err error
		conn, err = c.provider.Connect(ctx, cfg)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("connect after %d retries: %w", cfg.Retry.MaxRetries, err)
	}
	return conn, nil
}

func (c *standardConnector) Close() error {
	return nil
}
