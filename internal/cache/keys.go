package cache

import "fmt"

// KeyPrefix namespaces the different kinds of cache keys.
type KeyPrefix string

const (
	PrefixLink KeyPrefix = "link" // link:shortCode -> long URL
)

// KeyBuilder builds cache keys with an optional namespace for multi-tenancy.
type KeyBuilder struct {
	namespace string
}

func NewKeyBuilder(namespace string) *KeyBuilder {
	return &KeyBuilder{namespace: namespace}
}

func (k *KeyBuilder) Build(prefix KeyPrefix, parts ...string) string {
	key := string(prefix)

	if k.namespace != "" {
		key = k.namespace + ":" + key
	}

	for _, part := range parts {
		key += ":" + part
	}

	return key
}

// Link builds the key holding the long URL for a short code.
func (k *KeyBuilder) Link(shortCode string) string {
	return k.Build(PrefixLink, shortCode)
}

// Pattern returns a glob for all keys of a prefix.
func (k *KeyBuilder) Pattern(prefix KeyPrefix) string {
	if k.namespace != "" {
		return fmt.Sprintf("%s:%s:*", k.namespace, prefix)
	}
	return fmt.Sprintf("%s:*", prefix)
}

// DefaultKeyBuilder is the builder used when no namespace is configured.
var DefaultKeyBuilder = NewKeyBuilder("")
