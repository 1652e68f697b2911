package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jrenteria/tiendasync/internal/server/storage"
)

// List retrieves all live documents of a collection ordered by a field
// Пустой orderBy дает порядок по id
func (s *Storage) List(ctx context.Context, collection, orderBy string) ([]storage.Document, error) {
	var rows *sql.Rows
	var err error

	if orderBy == "" {
		query := `
			SELECT id, data, updated_at, deleted
			FROM documents
			WHERE collection = ? AND deleted = 0
			ORDER BY id ASC
		`
		rows, err = s.db.QueryContext(ctx, query, collection)
	} else {
		// Имя поля уходит в json_extract параметром, не конкатенацией
		query := `
			SELECT id, data, updated_at, deleted
			FROM documents
			WHERE collection = ? AND deleted = 0
			ORDER BY json_extract(data, '$.' || ?) ASC, id ASC
		`
		rows, err = s.db.QueryContext(ctx, query, collection, orderBy)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	return scanDocuments(rows)
}

// FindByField retrieves the first live document whose field equals value
// Returns ErrDocumentNotFound if no document matches
func (s *Storage) FindByField(ctx context.Context, collection, field, value string) (*storage.Document, error) {
	query := `
		SELECT id, data, updated_at, deleted
		FROM documents
		WHERE collection = ? AND deleted = 0
		  AND json_extract(data, '$.' || ?) = ?
		LIMIT 1
	`

	doc := storage.Document{}
	var data string
	var deleted int

	err := s.db.QueryRowContext(ctx, query, collection, field, value).Scan(
		&doc.ID,
		&data,
		&doc.UpdatedAt,
		&deleted,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to find document: %w", err)
	}

	doc.Fields = json.RawMessage(data)
	doc.Deleted = deleted != 0

	return &doc, nil
}

// GetSince retrieves all documents (including tombstones) modified strictly
// after the given timestamp, ordered by timestamp. Used for delta sync
func (s *Storage) GetSince(ctx context.Context, collection string, since int64) ([]storage.Document, error) {
	query := `
		SELECT id, data, updated_at, deleted
		FROM documents
		WHERE collection = ? AND updated_at > ?
		ORDER BY updated_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, collection, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents since timestamp: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			err = cerr
		}
	}()

	return scanDocuments(rows)
}

// UpsertMany merge-saves a batch of documents in a single transaction.
// Поля входящего документа накладываются поверх существующих; отсутствующие
// поля сохраняются. Каждая запись штампуется серверным timestamp,
// tombstone при записи снимается.
func (s *Storage) UpsertMany(ctx context.Context, collection string, docs []storage.Document, stamp int64) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op после Commit

	written := 0
	for _, doc := range docs {
		if doc.ID == "" {
			return 0, fmt.Errorf("document id is required")
		}

		var existing string
		err := tx.QueryRowContext(ctx,
			`SELECT data FROM documents WHERE collection = ? AND id = ?`,
			collection, doc.ID,
		).Scan(&existing)

		merged := doc.Fields
		switch {
		case err == nil:
			merged, err = mergeFields(json.RawMessage(existing), doc.Fields)
			if err != nil {
				return 0, fmt.Errorf("failed to merge document %s: %w", doc.ID, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			// новая запись, merge не нужен
		default:
			return 0, fmt.Errorf("failed to read existing document: %w", err)
		}

		if len(merged) == 0 {
			merged = json.RawMessage("{}")
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO documents (collection, id, data, updated_at, deleted)
			VALUES (?, ?, ?, ?, 0)
			ON CONFLICT (collection, id) DO UPDATE
			SET data = excluded.data, updated_at = excluded.updated_at, deleted = 0
		`, collection, doc.ID, string(merged), stamp)
		if err != nil {
			return 0, fmt.Errorf("failed to upsert document %s: %w", doc.ID, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return written, nil
}

// Delete marks a document as deleted (soft delete) with a new timestamp
// Returns ErrDocumentNotFound if document doesn't exist
func (s *Storage) Delete(ctx context.Context, collection, id string, stamp int64) error {
	query := `
		UPDATE documents
		SET deleted = 1, updated_at = ?
		WHERE collection = ? AND id = ?
	`

	result, err := s.db.ExecContext(ctx, query, stamp, collection, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrDocumentNotFound
	}

	return nil
}

// scanDocuments is a helper function to scan multiple documents from rows
func scanDocuments(rows *sql.Rows) ([]storage.Document, error) {
	var docs []storage.Document

	for rows.Next() {
		doc := storage.Document{}
		var data string
		var deleted int

		if err := rows.Scan(&doc.ID, &data, &doc.UpdatedAt, &deleted); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}

		doc.Fields = json.RawMessage(data)
		doc.Deleted = deleted != 0

		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return docs, nil
}

// mergeFields накладывает поля incoming поверх existing
func mergeFields(existing, incoming json.RawMessage) (json.RawMessage, error) {
	base := map[string]json.RawMessage{}
	if len(existing) > 0 {
		if err := json.Unmarshal(existing, &base); err != nil {
			return nil, fmt.Errorf("failed to unmarshal existing fields: %w", err)
		}
	}

	overlay := map[string]json.RawMessage{}
	if len(incoming) > 0 {
		if err := json.Unmarshal(incoming, &overlay); err != nil {
			return nil, fmt.Errorf("failed to unmarshal incoming fields: %w", err)
		}
	}

	for k, v := range overlay {
		base[k] = v
	}

	merged, err := json.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal merged fields: %w", err)
	}
	return merged, nil
}
