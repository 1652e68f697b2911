package storage

import (
	"context"
	"encoding/json"
)

// Document — запись коллекции документов в хранилище.
// Fields хранит бизнес-поля как JSON-объект; envelope несет id,
// серверный timestamp и флаг tombstone.
type Document struct {
	ID        string
	Fields    json.RawMessage
	UpdatedAt int64
	Deleted   bool
}

// DocumentStore defines interface for document collection persistence
type DocumentStore interface {
	// List retrieves all live (non-deleted) documents of a collection.
	// orderBy задает имя поля внутри Fields; пустое значение — порядок по id.
	// Returns empty slice if collection is empty
	List(ctx context.Context, collection, orderBy string) ([]Document, error)

	// FindByField retrieves the first live document whose field equals value.
	// Returns ErrDocumentNotFound if no document matches
	FindByField(ctx context.Context, collection, field, value string) (*Document, error)

	// GetSince retrieves all documents (including tombstones) whose server
	// timestamp is strictly greater than since, ordered by timestamp.
	// Used for delta synchronization
	GetSince(ctx context.Context, collection string, since int64) ([]Document, error)

	// UpsertMany merge-saves a batch of documents: supplied fields overwrite,
	// absent fields of an existing document survive. Every written document
	// is stamped with the given server timestamp.
	// Returns the number of written documents
	UpsertMany(ctx context.Context, collection string, docs []Document, stamp int64) (int, error)

	// Delete marks a document as deleted (tombstone) with a new timestamp.
	// Returns ErrDocumentNotFound if document doesn't exist
	Delete(ctx context.Context, collection, id string, stamp int64) error
}
