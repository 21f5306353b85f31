// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
)

// LevelDB is a KV backed by a LevelDB database on disk.
type LevelDB struct {
	db *leveldb.DB
}

// OpenLevelDB opens or creates the database at path.
func OpenLevelDB(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open store %s", path)
	}
	return &LevelDB{db: db}, nil
}

func (s *LevelDB) Get(key string) ([]byte, error) {
	v, err := s.db.Get([]byte(key), nil)
	switch {
	case err == leveldb.ErrNotFound:
		return nil, ErrNotFound
	case err == leveldb.ErrClosed:
		return nil, ErrClosed
	case err != nil:
		return nil, errors.Wrapf(err, "failed to get %q", key)
	}
	return v, nil
}

func (s *LevelDB) Put(key string, value []byte) error {
	if err := s.db.Put([]byte(key), value, nil); err != nil {
		return s.wrap(err, "put", key)
	}
	return nil
}

func (s *LevelDB) Delete(key string) error {
	if err := s.db.Delete([]byte(key), nil); err != nil {
		return s.wrap(err, "delete", key)
	}
	return nil
}

// Keys iterates over the whole database. LevelDB keys are sorted, so the
// result is in ascending order.
func (s *LevelDB) Keys() ([]string, error) {
	it := s.db.NewIterator(nil, nil)
	defer it.Release()
	var keys []string
	for it.Next() {
		keys = append(keys, string(it.Key()))
	}
	if err := it.Error(); err != nil {
		return nil, s.wrap(err, "iterate", "")
	}
	return keys, nil
}

func (s *LevelDB) Close() error {
	return s.db.Close()
}

func (s *LevelDB) wrap(err error, op, key string) error {
	if err == leveldb.ErrClosed {
		return ErrClosed
	}
	return errors.Wrapf(err, "failed to %s %q", op, key)
}
