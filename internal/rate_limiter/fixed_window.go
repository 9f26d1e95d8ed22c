package ratelimiter

import (
	"sync"
	"time"

	"github.com/psucert/certserve/internal/config"
	"go.uber.org/zap"
)

// FixedWindowRateLimiter counts requests per client key within a fixed time
// window. Counters reset when the window elapses.
type FixedWindowRateLimiter struct {
	sync.RWMutex
	clients map[string]int
	cfg     config.RateLimiterConfig
	logger  *zap.SugaredLogger
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]int),
		cfg:     cfg,
		logger:  logger,
	}
}

// Allow reports whether the client identified by key may proceed, and if not,
// how long until the current window resets.
func (rl *FixedWindowRateLimiter) Allow(key string) (bool, time.Duration) {
	if !rl.cfg.Enabled {
		return true, 0
	}

	rl.RLock()
	count, exists := rl.clients[key]
	rl.RUnlock()

	if !exists || count < rl.cfg.RequestsPerTimeFrame {
		rl.Lock()
		if !exists {
			go rl.resetCount(key)
		}
		rl.clients[key]++
		rl.Unlock()
		return true, 0
	}

	rl.logger.Debugf("Rate limit exceeded for client: %s", key)
	return false, rl.cfg.TimeFrame
}

func (rl *FixedWindowRateLimiter) resetCount(key string) {
	time.Sleep(rl.cfg.TimeFrame)
	rl.Lock()
	delete(rl.clients, key)
	rl.Unlock()
}
