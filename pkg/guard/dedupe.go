package guard

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const maxTrackedIDs = 10000

// Deduper remembers recently seen IDs. Telegram redelivers an update until it
// is acknowledged, so the same update ID can arrive more than once.
type Deduper struct {
	mu   sync.Mutex
	seen *expirable.LRU[int64, struct{}]
}

// NewDeduper remembers IDs for ttl.
func NewDeduper(ttl time.Duration) *Deduper {
	return &Deduper{
		seen: expirable.NewLRU[int64, struct{}](maxTrackedIDs, nil, ttl),
	}
}

// FirstSeen reports whether id has not been seen within the TTL, and marks it seen.
func (d *Deduper) FirstSeen(id int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.seen.Contains(id) {
		return false
	}
	d.seen.Add(id, struct{}{})
	return true
}
