package storage

// Storage represents a concurrent store of live boards.
type Storage[key comparable, val any] interface {
	// Add stores the value under the specified key unless the key is
	// already present, and returns the value that ended up stored plus
	// whether it was already there.
	Add(k key, v val) (val, bool)
	// Delete deletes the value associated with the specified key.
	Delete(k key)
	// Get returns the value associated with the specified key.
	Get(k key) (val, bool)
	// Exist returns true if the specified key is present.
	Exist(k key) bool
	// Tap calls the specified function for each entry until it returns
	// false.
	Tap(fn func(key, val) bool)
	// Len returns the number of live entries.
	Len() int
}
