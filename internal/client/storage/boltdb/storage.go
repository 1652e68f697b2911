package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketInventario = []byte("inventario")
	bucketMetadata   = []byte("metadata")
	bucketPending    = []byte("pending")
)

// Storage represents BoltDB cache implementation for client
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		// Bucket для кэшированного каталога
		if _, err := tx.CreateBucketIfNotExists(bucketInventario); err != nil {
			return fmt.Errorf("failed to create inventario bucket: %w", err)
		}

		// Bucket для метаданных синхронизации (cursor)
		if _, err := tx.CreateBucketIfNotExists(bucketMetadata); err != nil {
			return fmt.Errorf("failed to create metadata bucket: %w", err)
		}

		// Bucket для очереди отложенных операций
		if _, err := tx.CreateBucketIfNotExists(bucketPending); err != nil {
			return fmt.Errorf("failed to create pending bucket: %w", err)
		}

		return nil
	})
}
