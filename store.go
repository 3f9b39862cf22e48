package storagesafe

// Store describes the host key-value store the façade writes through.
// Keys and values are plain strings; absence is reported via the bool
// result, never as an error. Implementations must be safe for
// concurrent use.
//
// Positional enumeration via Len and Key exists so callers can scan the
// full key set. Positions are stable only while the store is not
// mutated, so scans that delete entries must walk from the highest
// index downward: removing the entry at position i never shifts the
// positions below i.
type Store interface {
	// GetItem returns the value stored under key, or ok=false if the
	// key is absent.
	GetItem(key string) (value string, ok bool, err error)

	// SetItem stores value under key, overwriting any previous value.
	// It may fail, e.g. when the backing medium rejects the write.
	SetItem(key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(key string) error

	// Clear removes every key unconditionally.
	Clear() error

	// Len reports the number of stored keys.
	Len() (int, error)

	// Key returns the key at the given position, or ok=false if the
	// position is out of range.
	Key(index int) (key string, ok bool, err error)
}
