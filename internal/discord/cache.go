package discord

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// registeredCache remembers which users already have a plant in a group so
// every command does not need a start round trip. Entries expire so a record
// removed on the server side is recreated eventually.
type registeredCache struct {
	lru *expirable.LRU[string, string]
}

func newRegisteredCache(size int, ttl time.Duration) *registeredCache {
	if size <= 0 {
		size = DefaultRegisteredCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultRegisteredCacheTTL
	}
	return &registeredCache{lru: expirable.NewLRU[string, string](size, nil, ttl)}
}

func (c *registeredCache) has(userID, groupID string) bool {
	g, ok := c.lru.Get(userID)
	return ok && g == groupID
}

func (c *registeredCache) add(userID, groupID string) {
	c.lru.Add(userID, groupID)
}

func (c *registeredCache) forget(userID string) {
	c.lru.Remove(userID)
}

func (c *registeredCache) len() int {
	return c.lru.Len()
}

// EnsurePlant creates the user's plant on first contact. Start is idempotent on
// the server, the cache only saves the request.
func (c *APIClient) EnsurePlant(ctx context.Context, userID, displayName, groupID string) error {
	if c.registered.has(userID, groupID) {
		return nil
	}
	if _, err := c.StartPlant(ctx, userID, displayName, groupID); err != nil {
		return err
	}
	c.registered.add(userID, groupID)
	return nil
}

// SetRegisteredCache replaces the registration cache with one of the given size and TTL
func (c *APIClient) SetRegisteredCache(size int, ttl time.Duration) {
	c.registered = newRegisteredCache(size, ttl)
}
