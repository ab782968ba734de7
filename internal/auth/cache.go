package auth

import (
	"time"

	"github.com/benefitbutler/backend/internal/user"
	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"
)

const defaultUserCacheTTL = time.Minute

// UserCache keeps recently authenticated active users so the bearer
// middleware does not hit the database on every request.
type UserCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewUserCache(ttl time.Duration) (*UserCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     1000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = defaultUserCacheTTL
	}
	return &UserCache{cache: cache, ttl: ttl}, nil
}

func (c *UserCache) Get(userID uuid.UUID) (*user.User, bool) {
	value, ok := c.cache.Get(userID.String())
	if !ok {
		return nil, false
	}
	u, ok := value.(*user.User)
	return u, ok
}

func (c *UserCache) Set(u *user.User) {
	c.cache.SetWithTTL(u.ID.String(), u, 1, c.ttl)
}

func (c *UserCache) Delete(userID uuid.UUID) {
	c.cache.Del(userID.String())
}

// Wait blocks until buffered writes are visible to Get.
func (c *UserCache) Wait() {
	c.cache.Wait()
}

func (c *UserCache) Close() {
	c.cache.Close()
}
