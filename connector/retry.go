package connector

import (
	"context"
	"time"
)

// retryConnect runs connect up to MaxRetries+1 times with exponential
// backoff, respecting context cancellation between attempts.
func retryConnect(ctx context.Context, cfg *RetryConfig, connect func(context.Context) error) error {
	delay := cfg.BaseDelay
	if delay == 0 {
		delay = time.Second
	}

	var err error
	for attempt := 0; ; attempt++ {
		err = connect(ctx)
		if err == nil {
			return nil
		}
		if attempt >= cfg.MaxRetries {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
			if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
				delay = cfg.MaxDelay
			}
		}
	}
}
