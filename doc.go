// Package storagesafe provides a typed, namespaced façade over a
// string key-value store with pluggable serialization.
//
// # Overview
//
// storagesafe wraps any synchronous string-keyed store behind a small
// typed API. It adds three conveniences on top of the raw store:
// optional key namespacing via a prefix, pluggable serialization so
// values are not restricted to raw strings, and ergonomic existence
// checks and scoped clearing. It separates concerns between the façade
// (Storage) and the backing store (Store), so backends can be swapped
// without touching caller code.
//
// # Quick Start
//
//	store := storagesafe.New(storagesafe.NewMemory(),
//	    storagesafe.WithPrefix("app"))
//
//	if err := store.Set("user", User{Name: "Alice"}); err != nil {
//	    // handle write failure
//	}
//
//	user, ok, err := storagesafe.Get[User](store, "user")
//
// Keys are stored as "app:user", so instances with distinct prefixes
// never collide. An instance without a prefix uses bare keys — and its
// Clear wipes the whole store, since it has no namespace of its own.
//
// # Backends
//
// Three Store implementations ship with the module:
//
//   - NewMemory: in-memory, for tests and ephemeral state
//   - bolt.Open: persistent, single-file bbolt database
//   - leveldb.Open: persistent LevelDB database
//
// Any other backend works by implementing the six-method Store
// interface.
//
// # Serialization
//
// Values are encoded to strings before hitting the store. The default
// is JSON; pass WithSerializer to swap in anything else, e.g.
// Base64Serializer for opaque stored text, or a custom Serializer for
// encryption or compression. Presence (Has) is independent of
// decodability: a stored value that no longer decodes is still there.
//
// # Error Handling
//
// Set failures surface as *WriteError and Get failures as *ReadError,
// both wrapping the underlying cause:
//
//	var werr *storagesafe.WriteError
//	if errors.As(err, &werr) {
//	    // werr.Key, werr.Unwrap()
//	}
//
// Absence is never an error: Get reports it through its ok result, and
// Remove of a missing key is a no-op.
//
// # Thread Safety
//
// A Storage instance holds no mutable state of its own; it is as safe
// for concurrent use as its backing Store. All shipped backends are
// safe for concurrent use, but no cross-instance coordination exists —
// two instances sharing a store interleave writes last-write-wins.
package storagesafe
