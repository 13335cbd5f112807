package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const boltBucket = "session"

// Bolt keeps the token in a local bbolt keystore. Unlike the plain file
// backend it tolerates concurrent processes via bolt's file lock.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt initializes the bbolt file and ensures the session bucket
// exists.
func OpenBolt(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &Bolt{db: db}, nil
}

func (b *Bolt) Load(ctx context.Context) (string, error) {
	if b == nil || b.db == nil {
		return "", bolt.ErrDatabaseNotOpen
	}
	var token string
	err := b.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(boltBucket)).Get([]byte(TokenKey)); v != nil {
			token = string(v)
		}
		return nil
	})
	return token, err
}

func (b *Bolt) Save(ctx context.Context, token string) error {
	if b == nil || b.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put([]byte(TokenKey), []byte(token))
	})
}

func (b *Bolt) Clear(ctx context.Context) error {
	if b == nil || b.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Delete([]byte(TokenKey))
	})
}

func (b *Bolt) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}
