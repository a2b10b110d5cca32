package session

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/interview-prep/internal/config"
	"github.com/jonathan/interview-prep/internal/logging"
)

// memoryCleanupInterval is how often the memory backend drops expired entries.
const memoryCleanupInterval = 5 * time.Minute

// Open builds the store selected by cfg.SessionBackend.
func Open(ctx context.Context, cfg *config.Config, log *logging.Logger) (Store, error) {
	switch cfg.SessionBackend {
	case config.BackendMemory, "":
		return NewMemoryStore(cfg.SessionTTL, memoryCleanupInterval), nil
	case config.BackendCookie:
		return NewCookieStore(cfg.SessionSecret, cfg.SessionTTL), nil
	case config.BackendRedis:
		s, err := NewRedisStore(ctx, cfg.RedisAddr, cfg.SessionTTL)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendPostgres:
		s, err := NewPostgresStore(ctx, cfg.DatabaseURL, cfg.SessionTTL, log)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}
