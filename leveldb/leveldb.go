// Package leveldb implements the storagesafe host store on goleveldb.
package leveldb

import (
	"github.com/syndtr/goleveldb/leveldb"

	storagesafe "github.com/emersxw/ts-storage-safe"
)

// Store implements storagesafe.Store backed by a LevelDB database.
type Store struct {
	db *leveldb.DB
}

var _ storagesafe.Store = (*Store)(nil)

// Open creates or opens a LevelDB database at the given path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) GetItem(key string) (string, bool, error) {
	data, err := s.db.Get([]byte(key), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

func (s *Store) SetItem(key, value string) error {
	return s.db.Put([]byte(key), []byte(value), nil)
}

func (s *Store) RemoveItem(key string) error {
	return s.db.Delete([]byte(key), nil)
}

// Clear deletes every key in one batch write.
func (s *Store) Clear() error {
	batch := new(leveldb.Batch)

	iter := s.db.NewIterator(nil, nil)
	for iter.Next() {
		batch.Delete(append([]byte(nil), iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return err
	}

	return s.db.Write(batch, nil)
}

func (s *Store) Len() (int, error) {
	n := 0
	iter := s.db.NewIterator(nil, nil)
	for iter.Next() {
		n++
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return 0, err
	}
	return n, nil
}

// Key enumerates in LevelDB's byte-sorted key order.
func (s *Store) Key(index int) (string, bool, error) {
	if index < 0 {
		return "", false, nil
	}
	iter := s.db.NewIterator(nil, nil)
	defer iter.Release()

	i := 0
	for iter.Next() {
		if i == index {
			key := string(iter.Key())
			if err := iter.Error(); err != nil {
				return "", false, err
			}
			return key, true, nil
		}
		i++
	}
	if err := iter.Error(); err != nil {
		return "", false, err
	}
	return "", false, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
