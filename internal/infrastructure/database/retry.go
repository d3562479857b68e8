package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultMaxAttempts = 10
	DefaultRetryDelay  = 3 * time.Second
)

// RetryConfig bounds the startup connection loop. Sleep is injectable so
// tests can run the loop without wall-clock waits; when nil, time.Sleep is
// used.
type RetryConfig struct {
	MaxAttempts int
	Delay       time.Duration
	Sleep       func(time.Duration)
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.Delay <= 0 {
		c.Delay = DefaultRetryDelay
	}
	if c.Sleep == nil {
		c.Sleep = time.Sleep
	}
	return c
}

// OpenWithRetry runs the startup readiness gate: connect and create the
// schema, retrying with a constant delay while the backend comes up. Every
// error kind is treated the same, since at startup a booting backend and a
// misconfigured one are indistinguishable. When all attempts fail the last
// error is returned and the caller must abort instead of serving traffic.
func OpenWithRetry(databaseURL, sqlitePath string, retry RetryConfig, log *zap.Logger) (*DB, error) {
	return openWithRetry(func() (*DB, error) {
		return Open(databaseURL, sqlitePath)
	}, retry, log)
}

func openWithRetry(open func() (*DB, error), retry RetryConfig, log *zap.Logger) (*DB, error) {
	retry = retry.withDefaults()

	var lastErr error
	for attempt := 1; attempt <= retry.MaxAttempts; attempt++ {
		log.Info("connecting to database",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", retry.MaxAttempts),
		)

		db, err := open()
		if err == nil {
			log.Info("database is ready, tables created (or already exist)")
			return db, nil
		}

		lastErr = err
		if attempt < retry.MaxAttempts {
			log.Warn("database not ready yet",
				zap.Error(err),
				zap.Duration("retry_in", retry.Delay),
			)
			retry.Sleep(retry.Delay)
		}
	}

	return nil, fmt.Errorf("database not reachable after %d attempts: %w", retry.MaxAttempts, lastErr)
}
