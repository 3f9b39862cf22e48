package storagesafe

import (
	"fmt"
	"strings"
)

// Option customizes Storage behavior.
type Option func(*Storage)

// WithPrefix namespaces every key as "prefix:key" before it touches the
// host store. An empty prefix leaves keys untouched.
func WithPrefix(prefix string) Option {
	return func(s *Storage) {
		s.prefix = prefix
	}
}

// WithSerializer replaces the default JSON serializer.
// If nil is passed, the default is kept.
func WithSerializer(ser Serializer) Option {
	return func(s *Storage) {
		if ser != nil {
			s.serializer = ser
		}
	}
}

// WithLogger specifies a logger for operation logging.
// If not provided, a no-op logger is used (no logging).
func WithLogger(logger Logger) Option {
	return func(s *Storage) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLogTag sets a tag prefix for all log messages.
// Useful for identifying the source of logs when several Storage
// instances share a logger.
func WithLogTag(tag string) Option {
	return func(s *Storage) {
		s.logTag = tag
	}
}

// Storage is a typed, namespaced façade over a host Store. It owns a
// fixed key prefix and a serializer pair; neither can change after
// construction. All persistence is delegated to the injected Store.
type Storage struct {
	store           Store
	prefix          string
	prefixWithColon string
	serializer      Serializer
	logger          Logger
	logTag          string
}

// Default is a ready-to-use instance with no prefix and the JSON
// serializer, backed by an in-memory store.
var Default = New(NewMemory())

// New creates a Storage over the given host store. If store is nil, an
// in-memory store is used. Keys are stored as "prefix:key" when a
// prefix is configured, bare otherwise.
func New(store Store, opts ...Option) *Storage {
	s := &Storage{
		store:      store,
		serializer: JSONSerializer{},
		logger:     defaultLogger,
	}
	if s.store == nil {
		s.store = NewMemory()
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.prefix != "" {
		s.prefixWithColon = s.prefix + ":"
	}
	return s
}

func (s *Storage) key(k string) string {
	return s.prefixWithColon + k
}

func (s *Storage) logf(level string, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if s.logTag != "" {
		msg = s.logTag + " " + msg
	}
	switch level {
	case "info":
		s.logger.Info(msg)
	case "warn":
		s.logger.Warn(msg)
	case "error":
		s.logger.Error(msg)
	case "debug":
		s.logger.Debug(msg)
	}
}

// Set encodes value with the configured serializer and writes it under
// the namespaced key. Encoding and host-store failures are returned as
// a *WriteError wrapping the cause.
func (s *Storage) Set(key string, value any) error {
	encoded, err := s.serializer.Encode(value)
	if err != nil {
		s.logf("error", "Set %s failed: %v", key, err)
		return &WriteError{Key: key, Err: err}
	}
	if err := s.store.SetItem(s.key(key), encoded); err != nil {
		s.logf("error", "Set %s failed: %v", key, err)
		return &WriteError{Key: key, Err: err}
	}
	return nil
}

// Has reports whether the namespaced key holds a value. Presence is
// decided by the host store alone; a value that would fail to decode
// still counts as present.
func (s *Storage) Has(key string) (bool, error) {
	_, ok, err := s.store.GetItem(s.key(key))
	if err != nil {
		s.logf("error", "Has %s failed: %v", key, err)
		return false, err
	}
	return ok, nil
}

// Remove deletes the namespaced key. Removing an absent key is not an
// error.
func (s *Storage) Remove(key string) error {
	if err := s.store.RemoveItem(s.key(key)); err != nil {
		s.logf("error", "Remove %s failed: %v", key, err)
		return err
	}
	return nil
}

// Clear removes this instance's entries. With a configured prefix,
// exactly the keys under "prefix:" are removed, leaving other
// namespaces alone. Without a prefix there is no way to tell this
// instance's keys from anyone else's, so the entire host store is
// wiped.
//
// The scan walks positions from the highest index downward so that
// removing an entry never shifts a position that has not been visited
// yet.
func (s *Storage) Clear() error {
	if s.prefix == "" {
		return s.ClearAll()
	}

	n, err := s.store.Len()
	if err != nil {
		s.logf("error", "Clear failed: %v", err)
		return err
	}
	for i := n - 1; i >= 0; i-- {
		k, ok, err := s.store.Key(i)
		if err != nil {
			s.logf("error", "Clear failed: %v", err)
			return err
		}
		if !ok {
			continue
		}
		if !strings.HasPrefix(k, s.prefixWithColon) {
			continue
		}
		if err := s.store.RemoveItem(k); err != nil {
			s.logf("error", "Clear failed: %v", err)
			return err
		}
	}
	return nil
}

// ClearAll wipes the entire host store, including entries written by
// other Storage instances and by code outside this package.
func (s *Storage) ClearAll() error {
	if err := s.store.Clear(); err != nil {
		s.logf("error", "ClearAll failed: %v", err)
		return err
	}
	return nil
}

// Keys returns the business keys in this instance's namespace, with the
// prefix stripped. An instance without a prefix sees every key in the
// host store.
func (s *Storage) Keys() ([]string, error) {
	n, err := s.store.Len()
	if err != nil {
		s.logf("error", "Keys failed: %v", err)
		return nil, err
	}
	var keys []string
	for i := 0; i < n; i++ {
		k, ok, err := s.store.Key(i)
		if err != nil {
			s.logf("error", "Keys failed: %v", err)
			return nil, err
		}
		if !ok {
			continue
		}
		if s.prefixWithColon == "" {
			keys = append(keys, k)
			continue
		}
		if strings.HasPrefix(k, s.prefixWithColon) {
			keys = append(keys, k[len(s.prefixWithColon):])
		}
	}
	return keys, nil
}

// Get reads the namespaced key and decodes it into T. An absent key
// yields the zero value and ok=false without touching the serializer.
// Host-read and decode failures are returned as a *ReadError wrapping
// the cause.
//
// The type parameter is a compile-time convenience only: no runtime
// shape validation happens beyond what the serializer's Decode does.
func Get[T any](s *Storage, key string) (T, bool, error) {
	var v T
	raw, ok, err := s.store.GetItem(s.key(key))
	if err != nil {
		s.logf("error", "Get %s failed: %v", key, err)
		return v, false, &ReadError{Key: key, Err: err}
	}
	if !ok {
		return v, false, nil
	}
	if err := s.serializer.Decode(raw, &v); err != nil {
		s.logf("error", "Get %s failed: %v", key, err)
		var zero T
		return zero, false, &ReadError{Key: key, Err: err}
	}
	return v, true, nil
}

// GetOr is Get with a fallback: an absent key yields def instead of the
// zero value.
func GetOr[T any](s *Storage, key string, def T) (T, error) {
	v, ok, err := Get[T](s, key)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}
