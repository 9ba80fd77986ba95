package ports

import "context"

// KeyValueStore is a durable string key-value store
type KeyValueStore interface {
	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error

	// Get returns the value for key and whether it was present
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error
}
