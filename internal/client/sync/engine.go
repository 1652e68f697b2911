package sync

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	clientapi "github.com/jrenteria/tiendasync/internal/client/api"
	"github.com/jrenteria/tiendasync/internal/client/storage"
	"github.com/jrenteria/tiendasync/internal/models"
	"github.com/jrenteria/tiendasync/pkg/api"
)

//go:generate moq -out api_mock.go . DocumentsAPI

// DocumentsAPI определяет операции удалённого хранилища документов,
// которые нужны движку синхронизации
type DocumentsAPI interface {
	// GetAllOnce возвращает все живые документы коллекции, упорядоченные по полю
	GetAllOnce(ctx context.Context, collection, orderBy string) ([]api.Document, error)

	// GetDeltasSince возвращает документы, изменённые строго после cursor,
	// включая tombstones
	GetDeltasSince(ctx context.Context, collection string, since int64) (*api.DeltaResponse, error)

	// UpsertMany выполняет пакетную merge-запись документов
	UpsertMany(ctx context.Context, collection string, docs []api.Document) (*api.BatchUpsertResponse, error)

	// DeleteDocument удаляет один документ по id.
	// Неизвестный серверу id возвращает ошибку, распознаваемую через
	// errors.Is(err, clientapi.ErrDocumentNotFound).
	DeleteDocument(ctx context.Context, collection, id string) error
}

// Engine — offline-first движок синхронизации каталога.
//
// Единственный владелец авторитетной in-memory карты записей: все чтения
// обслуживаются из неё мгновенно, локальные мутации применяются
// оптимистично и ставятся в очередь на доставку, удалённые изменения
// вливаются по правилу last-write-wins. Очередь, кэш и cursor переживают
// перезапуск процесса через CacheStorage.
type Engine struct {
	apiClient  DocumentsAPI
	cache      storage.CacheStorage
	logger     *slog.Logger
	collection string

	// now инжектируется в тестах для детерминированных timestamps
	now func() models.Timestamp

	// loadMu сериализует холодную загрузку: параллельные вызовы LoadOnce
	// не должны запускать два полных fetch
	loadMu sync.Mutex

	mu        sync.Mutex
	byID      map[string]models.Producto
	loaded    bool
	subs      map[int]chan []models.Producto
	nextSubID int

	online  atomic.Bool
	syncing atomic.Bool
}

// NewEngine создает движок синхронизации для одной коллекции.
// Перед использованием необходимо один раз вызвать Init.
func NewEngine(apiClient DocumentsAPI, cache storage.CacheStorage, collection string, logger *slog.Logger) *Engine {
	e := &Engine{
		apiClient:  apiClient,
		cache:      cache,
		logger:     logger,
		collection: collection,
		now:        models.Now,
		byID:       make(map[string]models.Producto),
		subs:       make(map[int]chan []models.Producto),
	}
	e.online.Store(true)
	return e
}

// Init загружает кэшированный каталог из локального хранилища и публикует
// начальное состояние. Ошибки чтения кэша трактуются как пустой кэш и
// никогда не фатальны. Вызывается один раз на старте процесса.
func (e *Engine) Init(ctx context.Context) {
	products, err := e.cache.LoadProducts(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrCacheMiss) {
			e.logger.Warn("Failed to load cached products, starting empty", "error", err)
		}
		products = nil
	}

	e.mu.Lock()
	e.byID = make(map[string]models.Producto, len(products))
	for _, p := range products {
		e.byID[p.ID] = p
	}
	e.loaded = len(products) > 0
	list := e.listLocked()
	e.mu.Unlock()

	e.logger.Info("Engine initialized", "cached_products", len(products))
	e.publish(list)
}

// LoadOnce выполняет холодную загрузку каталога.
//
// Если состояние уже загружено (из кэша или предыдущего LoadOnce),
// возвращает его немедленно и запускает фоновую синхронизацию — полный
// fetch выполняется не более одного раза за холодный старт.
func (e *Engine) LoadOnce(ctx context.Context) ([]models.Producto, error) {
	e.loadMu.Lock()
	defer e.loadMu.Unlock()

	e.mu.Lock()
	if e.loaded {
		list := e.listLocked()
		e.mu.Unlock()
		go e.TrySync(context.Background())
		return list, nil
	}
	e.mu.Unlock()

	docs, err := e.apiClient.GetAllOnce(ctx, e.collection, "codigo")
	if err != nil {
		return nil, err
	}

	products := make([]models.Producto, 0, len(docs))
	for _, d := range docs {
		p, perr := productoFromDocument(d)
		if perr != nil {
			e.logger.Warn("Skipping malformed document", "document_id", d.ID, "error", perr)
			continue
		}
		products = append(products, p)
	}

	e.mu.Lock()
	e.byID = make(map[string]models.Producto, len(products))
	for _, p := range products {
		e.byID[p.ID] = p
	}
	e.loaded = true
	list := e.listLocked()
	e.mu.Unlock()

	e.persistProducts(ctx, list)
	e.saveCursor(ctx, e.now().Millis())
	e.publish(list)

	e.logger.Info("Full fetch completed", "products", len(list))
	return list, nil
}

// Snapshot возвращает текущее состояние каталога
func (e *Engine) Snapshot() []models.Producto {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.listLocked()
}

// Subscribe возвращает live-поток полного списка записей и функцию
// отписки. Канал сразу содержит текущее состояние; при каждом изменении
// устаревшее непрочитанное значение замещается новым.
func (e *Engine) Subscribe() (<-chan []models.Producto, func()) {
	e.mu.Lock()
	id := e.nextSubID
	e.nextSubID++
	ch := make(chan []models.Producto, 1)
	ch <- e.listLocked()
	e.subs[id] = ch
	e.mu.Unlock()

	cancel := func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if c, ok := e.subs[id]; ok {
			delete(e.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

// UpsertLocal оптимистично применяет локальное создание/изменение записи.
// Запись штампуется текущим временем, становится видимой локально до
// возврата из вызова и ставится в очередь на доставку; подтверждение
// сервера приходит строго позже и вызов его не ждёт.
func (e *Engine) UpsertLocal(ctx context.Context, p models.Producto) models.Producto {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.UpdatedAt = e.now()

	e.mu.Lock()
	e.byID[p.ID] = p
	list := e.listLocked()
	e.mu.Unlock()

	e.persistProducts(ctx, list)
	e.publish(list)

	e.enqueue(ctx, models.PendingOp{
		ID:        p.ID,
		Kind:      models.OpUpsert,
		Payload:   &p,
		UpdatedAt: p.UpdatedAt,
	})

	go e.TrySync(context.Background())
	return p
}

// DeleteLocal оптимистично удаляет запись локально и ставит удаление
// в очередь на доставку
func (e *Engine) DeleteLocal(ctx context.Context, id string) {
	e.mu.Lock()
	delete(e.byID, id)
	list := e.listLocked()
	e.mu.Unlock()

	e.persistProducts(ctx, list)
	e.publish(list)

	e.enqueue(ctx, models.PendingOp{
		ID:        id,
		Kind:      models.OpDelete,
		UpdatedAt: e.now(),
	})

	go e.TrySync(context.Background())
}

// TrySync выполняет одну попытку синхронизации: сливает очередь
// отложенных операций и подтягивает дельты с сервера.
//
// Повторный вход подавляется: вызов при уже идущей синхронизации или в
// offline — тихий no-op, не ошибка. Повтор обеспечивают следующие
// естественные триггеры (очередная мутация, возврат сети).
func (e *Engine) TrySync(ctx context.Context) {
	if !e.online.Load() {
		return
	}
	if !e.syncing.CompareAndSwap(false, true) {
		return
	}
	defer e.syncing.Store(false)

	if err := e.drainPending(ctx); err != nil {
		// Очередь осталась нетронутой и уйдёт целиком на следующем триггере
		e.logger.Warn("Queue drain failed, will retry on next trigger", "error", err)
		return
	}

	if err := e.pullDeltas(ctx); err != nil {
		e.logger.Warn("Delta pull failed", "error", err)
	}
}

// SetOnline переключает состояние сети. Переход offline → online
// запускает фоновую синхронизацию.
func (e *Engine) SetOnline(online bool) {
	was := e.online.Swap(online)
	if online && !was {
		e.logger.Info("Network restored, scheduling sync")
		go e.TrySync(context.Background())
	}
}

// PendingCount возвращает количество операций, ожидающих доставки
func (e *Engine) PendingCount(ctx context.Context) int {
	ops, err := e.cache.LoadPending(ctx)
	if err != nil {
		e.logger.Warn("Failed to load pending queue", "error", err)
		return 0
	}
	return len(ops)
}

// LastSync возвращает курсор последнего delta pull (epoch ms, 0 если
// синхронизация ещё не выполнялась)
func (e *Engine) LastSync(ctx context.Context) int64 {
	cursor, err := e.cache.LoadLastSync(ctx)
	if err != nil {
		e.logger.Warn("Failed to load sync cursor", "error", err)
		return 0
	}
	return cursor
}

// ---------------- внутреннее ----------------

// listLocked собирает срез записей в детерминированном порядке
// (по codigo, затем по id). Вызывается под e.mu.
func (e *Engine) listLocked() []models.Producto {
	list := make([]models.Producto, 0, len(e.byID))
	for _, p := range e.byID {
		list = append(list, p)
	}
	sortProducts(list)
	return list
}

// publish рассылает состояние всем подписчикам, замещая устаревшие
// непрочитанные значения
func (e *Engine) publish(list []models.Producto) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, ch := range e.subs {
		select {
		case ch <- list:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- list
		}
	}
}

// persistProducts сохраняет каталог в локальный кэш.
// Ошибка записи не фатальна и не всплывает к вызывающему.
func (e *Engine) persistProducts(ctx context.Context, list []models.Producto) {
	if err := e.cache.SaveProducts(ctx, list); err != nil {
		e.logger.Warn("Failed to persist products cache", "error", err)
	}
}

// saveCursor сохраняет cursor синхронизации, ошибки только логируются
func (e *Engine) saveCursor(ctx context.Context, cursor int64) {
	if err := e.cache.SaveLastSync(ctx, cursor); err != nil {
		e.logger.Warn("Failed to save sync cursor", "error", err)
	}
}

// enqueue ставит операцию в очередь, схлопывая её с ранее поставленной
// операцией того же id: в очереди выживает только последнее намеренное
// состояние записи (upsert замещает upsert, delete замещает upsert).
func (e *Engine) enqueue(ctx context.Context, op models.PendingOp) {
	ops, err := e.cache.LoadPending(ctx)
	if err != nil {
		e.logger.Warn("Failed to load pending queue, starting empty", "error", err)
		ops = nil
	}

	filtered := make([]models.PendingOp, 0, len(ops)+1)
	for _, existing := range ops {
		if existing.ID != op.ID {
			filtered = append(filtered, existing)
		}
	}
	filtered = append(filtered, op)

	if err := e.cache.SavePending(ctx, filtered); err != nil {
		e.logger.Warn("Failed to persist pending queue", "error", err)
	}
}

// drainPending отправляет всю очередь на сервер: upserts одной пакетной
// записью, deletes отдельными вызовами. Очередь очищается только после
// полного успеха; частичных ретраев нет — пакетная запись идемпотентна
// (upsert по id), повтор всей очереди безопасен. Удаление id, которого
// сервер никогда не видел (offline создание+удаление, схлопнутое в один
// delete), — успех: обе стороны уже сходятся на отсутствии записи.
func (e *Engine) drainPending(ctx context.Context) error {
	ops, err := e.cache.LoadPending(ctx)
	if err != nil {
		e.logger.Warn("Failed to load pending queue", "error", err)
		return nil
	}
	if len(ops) == 0 {
		return nil
	}

	upserts := make([]api.Document, 0, len(ops))
	for _, op := range ops {
		if op.Kind != models.OpUpsert || op.Payload == nil {
			continue
		}
		doc, derr := documentFromProducto(*op.Payload)
		if derr != nil {
			e.logger.Warn("Skipping unserializable pending op", "id", op.ID, "error", derr)
			continue
		}
		upserts = append(upserts, doc)
	}

	if len(upserts) > 0 {
		if _, err := e.apiClient.UpsertMany(ctx, e.collection, upserts); err != nil {
			return err
		}
	}

	for _, op := range ops {
		if op.Kind != models.OpDelete {
			continue
		}
		if err := e.apiClient.DeleteDocument(ctx, e.collection, op.ID); err != nil {
			// Запись создана и удалена offline: сервер этот id не видел,
			// состояния уже совпадают и операция считается доставленной
			if errors.Is(err, clientapi.ErrDocumentNotFound) {
				e.logger.Info("Delete of unknown document already converged", "id", op.ID)
				continue
			}
			return err
		}
	}

	if err := e.cache.SavePending(ctx, []models.PendingOp{}); err != nil {
		e.logger.Warn("Failed to clear pending queue", "error", err)
	}

	e.logger.Info("Pending queue drained", "operations", len(ops))
	return nil
}

// pullDeltas подтягивает изменения сервера после cursor и вливает их в
// карту безусловной перезаписью по id (last-write-wins); tombstone
// удаляет запись. Cursor сдвигается к "сейчас" даже при пустом окне,
// чтобы не сканировать его повторно.
func (e *Engine) pullDeltas(ctx context.Context) error {
	cursor, err := e.cache.LoadLastSync(ctx)
	if err != nil {
		e.logger.Warn("Failed to load sync cursor, using 0", "error", err)
		cursor = 0
	}

	resp, err := e.apiClient.GetDeltasSince(ctx, e.collection, cursor)
	if err != nil {
		return err
	}

	if len(resp.Documents) > 0 {
		e.mu.Lock()
		for _, d := range resp.Documents {
			if d.Deleted {
				delete(e.byID, d.ID)
				continue
			}
			p, perr := productoFromDocument(d)
			if perr != nil {
				e.logger.Warn("Skipping malformed delta", "document_id", d.ID, "error", perr)
				continue
			}
			e.byID[p.ID] = p
		}
		list := e.listLocked()
		e.mu.Unlock()

		e.persistProducts(ctx, list)
		e.publish(list)

		e.logger.Info("Deltas merged", "count", len(resp.Documents))
	}

	e.saveCursor(ctx, e.now().Millis())
	return nil
}
