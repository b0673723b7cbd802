package redisstore

import (
	"context"
	"time"

	"ai-interview-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const leaseKeyPrefix = "interview:lease:"

// compare-and-delete so a relay never releases a lease it lost to expiry
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// SessionLeaseRepository shares lease ownership across processes.
type SessionLeaseRepository struct {
	rdb *redis.Client
}

func NewSessionLeaseRepository(rdb *redis.Client) contract.SessionLeaseRepository {
	return &SessionLeaseRepository{rdb: rdb}
}

func (r *SessionLeaseRepository) Claim(ctx context.Context, sessionID, owner string, ttl time.Duration) (bool, error) {
	key := leaseKeyPrefix + sessionID
	ok, err := r.rdb.SetNX(ctx, key, owner, ttl).Result()
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}

	current, err := r.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return r.rdb.SetNX(ctx, key, owner, ttl).Result()
	}
	if err != nil {
		return false, err
	}
	return current == owner, nil
}

func (r *SessionLeaseRepository) Release(ctx context.Context, sessionID, owner string) error {
	return releaseScript.Run(ctx, r.rdb, []string{leaseKeyPrefix + sessionID}, owner).Err()
}
