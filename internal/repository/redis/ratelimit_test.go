package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Verdict(t *testing.T) {
	limiter := &RateLimiter{requestsPerMinute: 10, burst: 2}

	t.Run("under budget", func(t *testing.T) {
		allowed, remaining := limiter.verdict(1)
		assert.True(t, allowed)
		assert.Equal(t, 11, remaining)
	})

	t.Run("last request in budget", func(t *testing.T) {
		allowed, remaining := limiter.verdict(12)
		assert.True(t, allowed)
		assert.Equal(t, 0, remaining)
	})

	t.Run("over budget", func(t *testing.T) {
		allowed, remaining := limiter.verdict(13)
		assert.False(t, allowed)
		assert.Equal(t, 0, remaining)
	})
}
