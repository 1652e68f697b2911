package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/jrenteria/tiendasync/internal/client/storage"
	"github.com/jrenteria/tiendasync/internal/models"
)

const (
	keyProducts = "products"
	keyLastSync = "last_sync"
	keyPending  = "queue"
)

// SaveProducts stores the full cached catalog as a single JSON blob
func (s *Storage) SaveProducts(ctx context.Context, products []models.Producto) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketInventario)
		if bucket == nil {
			return fmt.Errorf("inventario bucket not found")
		}

		data, err := json.Marshal(products)
		if err != nil {
			return fmt.Errorf("failed to marshal products: %w", err)
		}

		if err := bucket.Put([]byte(keyProducts), data); err != nil {
			return fmt.Errorf("failed to save products: %w", err)
		}

		return nil
	})
}

// LoadProducts retrieves the cached catalog
// Returns storage.ErrCacheMiss if the cache was never written
func (s *Storage) LoadProducts(ctx context.Context) ([]models.Producto, error) {
	var products []models.Producto

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketInventario)
		if bucket == nil {
			return fmt.Errorf("inventario bucket not found")
		}

		data := bucket.Get([]byte(keyProducts))
		if data == nil {
			return storage.ErrCacheMiss
		}

		if err := json.Unmarshal(data, &products); err != nil {
			return fmt.Errorf("failed to unmarshal products: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return products, nil
}

// SaveLastSync saves the sync cursor (epoch milliseconds)
func (s *Storage) SaveLastSync(ctx context.Context, cursor int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		cursorBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(cursorBytes, uint64(cursor))

		if err := bucket.Put([]byte(keyLastSync), cursorBytes); err != nil {
			return fmt.Errorf("failed to save sync cursor: %w", err)
		}

		return nil
	})
}

// LoadLastSync retrieves the sync cursor
// Returns 0 if no sync has been performed yet
func (s *Storage) LoadLastSync(ctx context.Context) (int64, error) {
	var cursor int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		cursorBytes := bucket.Get([]byte(keyLastSync))
		if cursorBytes == nil {
			// Первая синхронизация
			cursor = 0
			return nil
		}

		cursor = int64(binary.BigEndian.Uint64(cursorBytes))
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get sync cursor: %w", err)
	}

	return cursor, nil
}

// SavePending stores the whole pending operation queue
func (s *Storage) SavePending(ctx context.Context, ops []models.PendingOp) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}

		data, err := json.Marshal(ops)
		if err != nil {
			return fmt.Errorf("failed to marshal pending queue: %w", err)
		}

		if err := bucket.Put([]byte(keyPending), data); err != nil {
			return fmt.Errorf("failed to save pending queue: %w", err)
		}

		return nil
	})
}

// LoadPending retrieves the pending operation queue
// Returns an empty slice if the queue was never written
func (s *Storage) LoadPending(ctx context.Context) ([]models.PendingOp, error) {
	var ops []models.PendingOp

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}

		data := bucket.Get([]byte(keyPending))
		if data == nil {
			// Очередь ещё не создавалась
			ops = []models.PendingOp{}
			return nil
		}

		if err := json.Unmarshal(data, &ops); err != nil {
			return fmt.Errorf("failed to unmarshal pending queue: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return ops, nil
}
