package cache

import "context"

// LinkCache is the read-through lookup cache over the mapping store.
// It holds a subset of shortCode -> long URL pairs and is never authoritative
// for existence: a miss only means "not yet populated".
type LinkCache interface {
	// GetURL returns the cached long URL for a short code, or ErrCacheMiss.
	GetURL(ctx context.Context, shortCode string) (string, error)

	// SetURL stores a shortCode -> long URL pair. Writes are idempotent since
	// the long URL is immutable after creation.
	SetURL(ctx context.Context, shortCode, longURL string) error

	HealthCheck(ctx context.Context) error
	Close() error
}

// NullCache runs the service without a cache backend (Null Object Pattern):
// every read misses, every write succeeds.
type NullCache struct{}

func NewNullCache() *NullCache {
	return &NullCache{}
}

func (n *NullCache) GetURL(ctx context.Context, shortCode string) (string, error) {
	return "", ErrCacheMiss
}

func (n *NullCache) SetURL(ctx context.Context, shortCode, longURL string) error {
	return nil
}

func (n *NullCache) HealthCheck(ctx context.Context) error {
	return nil
}

func (n *NullCache) Close() error {
	return nil
}
