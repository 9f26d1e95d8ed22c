package ratelimiter

import (
	"testing"
	"time"

	"github.com/psucert/certserve/internal/config"
)

func TestFixedWindowLimiter(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 3,
		TimeFrame:            time.Minute,
		Enabled:              true,
	}, nil)

	for i := 0; i < 3; i++ {
		if allow, _ := limiter.Allow("10.0.0.1"); !allow {
			t.Fatalf("Request %d should be allowed", i+1)
		}
	}

	allow, retryAfter := limiter.Allow("10.0.0.1")
	if allow {
		t.Error("Fourth request in the window should be rejected")
	}
	if retryAfter != time.Minute {
		t.Errorf("Expected retry-after of one minute, got %v", retryAfter)
	}

	// A different client key is counted independently.
	if allow, _ := limiter.Allow("10.0.0.2"); !allow {
		t.Error("Different client should not share the window")
	}
}

func TestFixedWindowLimiterDisabled(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 1,
		TimeFrame:            time.Minute,
		Enabled:              false,
	}, nil)

	for i := 0; i < 10; i++ {
		if allow, _ := limiter.Allow("10.0.0.1"); !allow {
			t.Fatal("Disabled limiter must allow everything")
		}
	}
}
