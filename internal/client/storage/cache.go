package storage

import (
	"context"

	"github.com/jrenteria/tiendasync/internal/models"
)

//go:generate moq -out cache_mock.go . CacheStorage

// CacheStorage определяет локальный персистентный кэш каталога,
// переживающий перезапуск процесса. Значения пишутся целиком
// (replace-whole-value), без частичных обновлений.
type CacheStorage interface {
	// SaveProducts сохраняет полный список записей каталога
	SaveProducts(ctx context.Context, products []models.Producto) error

	// LoadProducts читает кэшированный список записей.
	// Возвращает ErrCacheMiss, если кэш ещё не создавался.
	LoadProducts(ctx context.Context) ([]models.Producto, error)

	// SaveLastSync сохраняет cursor синхронизации (epoch ms)
	SaveLastSync(ctx context.Context, cursor int64) error

	// LoadLastSync читает cursor синхронизации.
	// Возвращает 0, если синхронизация ещё не выполнялась.
	LoadLastSync(ctx context.Context) (int64, error)

	// SavePending сохраняет очередь отложенных операций целиком
	SavePending(ctx context.Context, ops []models.PendingOp) error

	// LoadPending читает очередь отложенных операций.
	// Возвращает пустой slice, если очередь не создавалась.
	LoadPending(ctx context.Context) ([]models.PendingOp, error)
}
