package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/jrenteria/tiendasync/internal/client/storage"
	"github.com/jrenteria/tiendasync/internal/models"
)

// createTestStorage создает временное BoltDB хранилище и инициализирует buckets
func createTestStorage(t *testing.T) (*Storage, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "cache_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		require.NoError(t, store.Close())
		require.NoError(t, os.RemoveAll(tmpDir))
	}

	return store, cleanup
}

func TestLoadProducts_EmptyCache(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Кэш ещё не писался — ожидаем ErrCacheMiss
	_, err := store.LoadProducts(ctx)
	assert.ErrorIs(t, err, storage.ErrCacheMiss)
}

func TestSaveAndLoadProducts(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	products := []models.Producto{
		{ID: "prod-1", Nombre: "Arroz", Codigo: "100", Stock: 5, UpdatedAt: models.Timestamp(100)},
		{ID: "prod-2", Nombre: "Atún", Codigo: "200", Stock: 3, UpdatedAt: models.Timestamp(200)},
	}

	require.NoError(t, store.SaveProducts(ctx, products))

	loaded, err := store.LoadProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, products, loaded)
}

func TestSaveProducts_OverwritesPrevious(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.SaveProducts(ctx, []models.Producto{{ID: "prod-1", Nombre: "Arroz"}}))
	require.NoError(t, store.SaveProducts(ctx, []models.Producto{{ID: "prod-2", Nombre: "Atún"}}))

	loaded, err := store.LoadProducts(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "prod-2", loaded[0].ID)
}

func TestSaveAndLoadLastSync(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Изначально cursor не сохранён — ожидаем 0
	cursor, err := store.LoadLastSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cursor)

	var expected int64 = 1700000000000
	require.NoError(t, store.SaveLastSync(ctx, expected))

	cursor, err = store.LoadLastSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, cursor)
}

func TestLoadPending_EmptyQueue(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ops, err := store.LoadPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestSaveAndLoadPending(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	ops := []models.PendingOp{
		{
			ID:        "prod-1",
			Kind:      models.OpUpsert,
			Payload:   &models.Producto{ID: "prod-1", Nombre: "Arroz", UpdatedAt: models.Timestamp(100)},
			UpdatedAt: models.Timestamp(100),
		},
		{
			ID:        "prod-2",
			Kind:      models.OpDelete,
			UpdatedAt: models.Timestamp(200),
		},
	}

	require.NoError(t, store.SavePending(ctx, ops))

	loaded, err := store.LoadPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, ops, loaded)
}

func TestCache_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "reopen_test.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	products := []models.Producto{{ID: "prod-1", Nombre: "Arroz", UpdatedAt: models.Timestamp(100)}}
	require.NoError(t, store.SaveProducts(ctx, products))
	require.NoError(t, store.SaveLastSync(ctx, 500))
	require.NoError(t, store.Close())

	// Открываем заново — состояние должно пережить перезапуск
	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	loaded, err := store.LoadProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, products, loaded)

	cursor, err := store.LoadLastSync(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(500), cursor)
}

func TestLoadLastSync_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	// Удаляем bucket metadata напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	_, err = store.LoadLastSync(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")
}
