package guard_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcw-copilot/pkg/guard"
)

func TestRateLimiter(t *testing.T) {
	rl := guard.NewRateLimiter(20) // burst of 2

	require.NoError(t, rl.Allow("chat-1"))
	require.NoError(t, rl.Allow("chat-1"))
	assert.ErrorIs(t, rl.Allow("chat-1"), guard.ErrRateLimited)
	assert.NoError(t, rl.Allow("chat-2"), "other keys have their own budget")
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := guard.NewRateLimiter(0)
	for i := 0; i < 100; i++ {
		require.NoError(t, rl.Allow("k"), "request %d", i)
	}
}

func TestRateLimiter_ConcurrentFirstUse(t *testing.T) {
	rl := guard.NewRateLimiter(50) // burst of 5

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
		start   = make(chan struct{})
	)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if rl.Allow("chat-1") == nil {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(5), allowed.Load(), "concurrent callers share one bucket per key")
}

func TestDeduper(t *testing.T) {
	d := guard.NewDeduper(time.Minute)

	assert.True(t, d.FirstSeen(42), "first delivery")
	assert.False(t, d.FirstSeen(42), "redelivery")
	assert.True(t, d.FirstSeen(43), "different id")
}

func TestDeduper_Expiry(t *testing.T) {
	d := guard.NewDeduper(20 * time.Millisecond)

	d.FirstSeen(7)
	time.Sleep(60 * time.Millisecond)

	assert.True(t, d.FirstSeen(7), "id is forgotten after ttl")
}
