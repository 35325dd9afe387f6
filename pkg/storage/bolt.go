package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	// BoltFileName is the database file, relative to the project dir
	BoltFileName = "formcraft.db"

	snapshotsBucketName = "snapshots"
	boltOpenTimeout     = time.Second
)

var ErrBucketNotFound = errors.New("snapshots bucket not found")

// BoltKV keeps values in a single bbolt bucket
type BoltKV struct {
	db *bolt.DB
}

// OpenBoltKV opens (creating if needed) the database at path
func OpenBoltKV(path string) (*BoltKV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: boltOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(snapshotsBucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialise %s: %w", path, err)
	}

	return &BoltKV{db: db}, nil
}

func (b *BoltKV) Get(key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	var value string
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(snapshotsBucketName))
		if bucket == nil {
			return ErrBucketNotFound
		}
		v := bucket.Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		// v is only valid inside the transaction
		value = string(v)
		return nil
	})
	if err != nil {
		return "", err
	}

	return value, nil
}

func (b *BoltKV) Set(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(snapshotsBucketName))
		if bucket == nil {
			return ErrBucketNotFound
		}
		return bucket.Put([]byte(key), []byte(value))
	})
}

func (b *BoltKV) Close() error {
	return b.db.Close()
}
