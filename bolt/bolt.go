// Package bolt implements the storagesafe host store on bbolt, an
// embedded single-file B+ tree database.
package bolt

import (
	"fmt"

	bolt "go.etcd.io/bbolt"

	storagesafe "github.com/emersxw/ts-storage-safe"
)

// All entries live in one bucket; namespacing happens above, in the
// façade's key prefixes.
var bucketName = []byte("storagesafe")

// Store implements storagesafe.Store backed by a bbolt database.
type Store struct {
	db *bolt.DB
}

var _ storagesafe.Store = (*Store)(nil)

// Open creates or opens a bbolt database at the given path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) GetItem(key string) (string, bool, error) {
	var val string
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		v := b.Get([]byte(key))
		if v != nil {
			val = string(v)
			found = true
		}
		return nil
	})
	return val, found, err
}

func (s *Store) SetItem(key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return fmt.Errorf("creating bucket: %w", err)
		}
		return b.Put([]byte(key), []byte(value))
	})
}

func (s *Store) RemoveItem(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}

func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketName) == nil {
			return nil
		}
		return tx.DeleteBucket(bucketName)
	})
}

func (s *Store) Len() (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		n = b.Stats().KeyN
		return nil
	})
	return n, err
}

// Key enumerates in bbolt's byte-sorted key order.
func (s *Store) Key(index int) (string, bool, error) {
	if index < 0 {
		return "", false, nil
	}
	var key string
	var found bool
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return nil
		}
		c := b.Cursor()
		i := 0
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			if i == index {
				key = string(k)
				found = true
				return nil
			}
			i++
		}
		return nil
	})
	return key, found, err
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}
