package memory

import (
	"context"
	"sync"
	"time"

	"ai-interview-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// SessionLeaseRepository keeps leases in process memory. Used when Redis is
// unavailable; ownership is then only exclusive within one process.
type SessionLeaseRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewSessionLeaseRepository() contract.SessionLeaseRepository {
	return &SessionLeaseRepository{
		cache: cache.New(2*time.Hour, 10*time.Minute),
	}
}

func (r *SessionLeaseRepository) Claim(ctx context.Context, sessionID, owner string, ttl time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if x, found := r.cache.Get(sessionID); found {
		return x.(string) == owner, nil
	}
	r.cache.Set(sessionID, owner, ttl)
	return true, nil
}

func (r *SessionLeaseRepository) Release(ctx context.Context, sessionID, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if x, found := r.cache.Get(sessionID); found && x.(string) == owner {
		r.cache.Delete(sessionID)
	}
	return nil
}
