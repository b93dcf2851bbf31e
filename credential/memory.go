// Package credential provides storage backends for the API key used by the
// gift-sender client. All stores keep a single value under one key and are
// safe for concurrent use.
package credential

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// DefaultKey is the key the credential is stored under when none is given.
const DefaultKey = "giftsender_api_key"

// MemoryStore keeps the credential in process memory. Nothing expires.
type MemoryStore struct {
	c   *cache.Cache
	key string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		c:   cache.New(cache.NoExpiration, 0),
		key: DefaultKey,
	}
}

// NewMemoryStoreWithKey returns a MemoryStore that already holds apiKey.
// An empty apiKey leaves the store empty.
func NewMemoryStoreWithKey(apiKey string) *MemoryStore {
	s := NewMemoryStore()
	if apiKey != "" {
		s.c.Set(s.key, apiKey, cache.NoExpiration)
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context) (string, bool, error) {
	v, found := s.c.Get(s.key)
	if !found {
		return "", false, nil
	}

	key, ok := v.(string)
	return key, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, apiKey string) error {
	s.c.Set(s.key, apiKey, cache.NoExpiration)
	return nil
}

func (s *MemoryStore) Remove(_ context.Context) error {
	s.c.Delete(s.key)
	return nil
}
