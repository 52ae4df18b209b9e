package auth

import (
	"context"
	"time"

	"github.com/allegro/bigcache/v3"
)

// Blacklist is the token revocation set. Entries carry a TTL equal to the
// token lifetime, so a revoked token is rejected until it would have expired
// anyway and the set stays bounded regardless of logout volume. Safe for
// concurrent use.
type Blacklist struct {
	cache *bigcache.BigCache
}

func NewBlacklist(ttl time.Duration) (*Blacklist, error) {
	cache, err := bigcache.New(context.Background(), bigcache.DefaultConfig(ttl))
	if err != nil {
		return nil, err
	}
	return &Blacklist{cache: cache}, nil
}

// Revoke adds a token to the set. Idempotent.
func (b *Blacklist) Revoke(token string) error {
	return b.cache.Set(token, []byte{1})
}

// IsRevoked reports whether a token has been revoked and not yet expired.
func (b *Blacklist) IsRevoked(token string) bool {
	_, err := b.cache.Get(token)
	return err == nil
}
