package contract

import (
	"context"
	"time"
)

// SessionLeaseRepository grants exclusive ownership of a live interview to a
// single relay. Claim returns false when another owner holds the lease.
type SessionLeaseRepository interface {
	Claim(ctx context.Context, sessionID, owner string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, sessionID, owner string) error
}
