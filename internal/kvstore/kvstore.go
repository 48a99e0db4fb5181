// Package kvstore provides the durable key-value store backing the session
// manager. Values are plain strings under short keys; the file and SQL
// implementations survive process restarts.
package kvstore

// Store is the persistence port used by the session manager
type Store interface {
	// Get returns the value for key and whether the key was present
	Get(key string) (string, bool, error)
	// Set adds or replaces the value for key
	Set(key, value string) error
	// Delete removes the key; deleting an absent key is not an error
	Delete(key string) error
	// Close releases any underlying resources
	Close() error
}
