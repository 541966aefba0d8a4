package revocation

import (
	"context"
	"sync"
	"time"
)

// InMemoryList keeps revoked token ids in process memory. Expired entries
// are dropped lazily on lookup.
type InMemoryList struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewInMemory() *InMemoryList {
	return &InMemoryList{revoked: make(map[string]time.Time), now: time.Now}
}

func (l *InMemoryList) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" {
		return nil
	}
	if err := validateTTL(ttl); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.revoked[tokenID] = l.now().Add(ttl)
	return nil
}

func (l *InMemoryList) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	until, ok := l.revoked[tokenID]
	if !ok {
		return false, nil
	}
	if !l.now().Before(until) {
		delete(l.revoked, tokenID)
		return false, nil
	}
	return true, nil
}
