package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jrenteria/tiendasync/internal/server/storage"
	"github.com/jrenteria/tiendasync/pkg/api"
)

// DocumentStore определяет интерфейс хранилища для обработчиков
type DocumentStore interface {
	List(ctx context.Context, collection, orderBy string) ([]storage.Document, error)
	FindByField(ctx context.Context, collection, field, value string) (*storage.Document, error)
	GetSince(ctx context.Context, collection string, since int64) ([]storage.Document, error)
	UpsertMany(ctx context.Context, collection string, docs []storage.Document, stamp int64) (int, error)
	Delete(ctx context.Context, collection, id string, stamp int64) error
}

// DocumentsHandler handles document collection requests
type DocumentsHandler struct {
	logger *slog.Logger
	store  DocumentStore
	now    func() time.Time
}

// NewDocumentsHandler creates a new documents handler
func NewDocumentsHandler(logger *slog.Logger, store DocumentStore) *DocumentsHandler {
	return &DocumentsHandler{
		logger: logger,
		store:  store,
		now:    time.Now,
	}
}

// Routes регистрирует маршруты обработчика на chi-роутере
func (h *DocumentsHandler) Routes(r chi.Router) {
	r.Route("/collections/{collection}", func(r chi.Router) {
		r.Get("/documents", h.HandleList)
		r.Get("/documents/search", h.HandleSearch)
		r.Get("/deltas", h.HandleDeltas)
		r.Post("/documents:batchUpsert", h.HandleBatchUpsert)
		r.Delete("/documents/{id}", h.HandleDelete)
	})
}

// HandleList обрабатывает GET /collections/{collection}/documents?order_by=field
// Возвращает все живые документы коллекции
func (h *DocumentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	orderBy := r.URL.Query().Get("order_by")

	docs, err := h.store.List(r.Context(), collection, orderBy)
	if err != nil {
		h.logger.Error("Failed to list documents", "error", err, "collection", collection)
		h.writeError(w, http.StatusInternalServerError, "internal", "failed to list documents")
		return
	}

	h.writeJSON(w, http.StatusOK, api.ListResponse{Documents: toAPIDocuments(docs)})

	h.logger.Info("List completed", "collection", collection, "count", len(docs))
}

// HandleSearch обрабатывает GET /collections/{collection}/documents/search?field=f&value=v
// Возвращает первый живой документ с совпадающим полем
func (h *DocumentsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	field := r.URL.Query().Get("field")
	value := r.URL.Query().Get("value")

	if field == "" {
		h.writeError(w, http.StatusBadRequest, "bad_request", "field parameter is required")
		return
	}

	doc, err := h.store.FindByField(r.Context(), collection, field, value)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			h.writeError(w, http.StatusNotFound, "not_found", "document not found")
			return
		}
		h.logger.Error("Failed to search document", "error", err, "collection", collection, "field", field)
		h.writeError(w, http.StatusInternalServerError, "internal", "failed to search document")
		return
	}

	h.writeJSON(w, http.StatusOK, toAPIDocument(*doc))
}

// HandleDeltas обрабатывает GET /collections/{collection}/deltas?since=timestamp
// Возвращает документы, изменённые строго после cursor, включая tombstones
func (h *DocumentsHandler) HandleDeltas(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	var since int64
	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		var err error
		since, err = strconv.ParseInt(sinceStr, 10, 64)
		if err != nil {
			h.logger.Warn("Invalid since parameter", "since", sinceStr, "error", err)
			h.writeError(w, http.StatusBadRequest, "bad_request", "invalid since parameter")
			return
		}
	}

	docs, err := h.store.GetSince(r.Context(), collection, since)
	if err != nil {
		h.logger.Error("Failed to get deltas", "error", err, "collection", collection)
		h.writeError(w, http.StatusInternalServerError, "internal", "failed to get deltas")
		return
	}

	resp := api.DeltaResponse{
		Documents:       toAPIDocuments(docs),
		ServerTimestamp: h.now().UnixMilli(),
	}
	h.writeJSON(w, http.StatusOK, resp)

	h.logger.Info("Deltas completed", "collection", collection, "since", since, "count", len(docs))
}

// HandleBatchUpsert обрабатывает POST /collections/{collection}/documents:batchUpsert
// Каждая запись merge-семантична и штампуется серверным timestamp
func (h *DocumentsHandler) HandleBatchUpsert(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	var req api.BatchUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode batch upsert request", "error", err)
		h.writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	docs := make([]storage.Document, 0, len(req.Documents))
	for i, doc := range req.Documents {
		if doc.ID == "" {
			h.writeError(w, http.StatusBadRequest, "bad_request",
				fmt.Sprintf("document %d: id is required", i))
			return
		}
		stored, err := fromAPIDocument(doc)
		if err != nil {
			h.logger.Warn("Failed to convert document", "error", err, "id", doc.ID)
			h.writeError(w, http.StatusBadRequest, "bad_request",
				fmt.Sprintf("document %d: invalid fields", i))
			return
		}
		docs = append(docs, stored)
	}

	stamp := h.now().UnixMilli()
	written, err := h.store.UpsertMany(r.Context(), collection, docs, stamp)
	if err != nil {
		h.logger.Error("Failed to upsert documents", "error", err, "collection", collection)
		h.writeError(w, http.StatusInternalServerError, "internal", "failed to upsert documents")
		return
	}

	h.writeJSON(w, http.StatusOK, api.BatchUpsertResponse{
		Written:         written,
		ServerTimestamp: stamp,
	})

	h.logger.Info("Batch upsert completed", "collection", collection, "written", written)
}

// HandleDelete обрабатывает DELETE /collections/{collection}/documents/{id}
// Документ помечается tombstone и продолжает отдаваться в deltas
func (h *DocumentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	id := chi.URLParam(r, "id")

	stamp := h.now().UnixMilli()
	if err := h.store.Delete(r.Context(), collection, id, stamp); err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			h.writeError(w, http.StatusNotFound, "not_found", "document not found")
			return
		}
		h.logger.Error("Failed to delete document", "error", err, "collection", collection, "id", id)
		h.writeError(w, http.StatusInternalServerError, "internal", "failed to delete document")
		return
	}

	w.WriteHeader(http.StatusNoContent)

	h.logger.Info("Delete completed", "collection", collection, "id", id)
}

func (h *DocumentsHandler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

func (h *DocumentsHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, api.ErrorResponse{Error: code, Message: message})
}

func toAPIDocument(doc storage.Document) api.Document {
	fields := map[string]json.RawMessage{}
	if len(doc.Fields) > 0 {
		// Поля хранятся валидным JSON-объектом; ошибка здесь невозможна
		_ = json.Unmarshal(doc.Fields, &fields)
	}
	return api.Document{
		ID:        doc.ID,
		Fields:    fields,
		UpdatedAt: doc.UpdatedAt,
		Deleted:   doc.Deleted,
	}
}

func toAPIDocuments(docs []storage.Document) []api.Document {
	out := make([]api.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toAPIDocument(doc))
	}
	return out
}

func fromAPIDocument(doc api.Document) (storage.Document, error) {
	fields, err := json.Marshal(doc.Fields)
	if err != nil {
		return storage.Document{}, fmt.Errorf("failed to marshal fields: %w", err)
	}
	return storage.Document{
		ID:        doc.ID,
		Fields:    fields,
		UpdatedAt: doc.UpdatedAt,
		Deleted:   doc.Deleted,
	}, nil
}
