package api

import "encoding/json"

// Document представляет один документ коллекции в wire-формате.
// Fields содержит произвольные поля документа; UpdatedAt проставляется
// сервером (epoch ms) при каждой записи.
type Document struct {
	ID        string                     `json:"id"`
	Fields    map[string]json.RawMessage `json:"fields"`
	UpdatedAt int64                      `json:"updated_at"`
	Deleted   bool                       `json:"deleted"`
}

// BatchUpsertRequest представляет пакетную запись документов.
// Семантика merge: меняются только переданные поля документа.
type BatchUpsertRequest struct {
	Documents []Document `json:"documents"`
}

// BatchUpsertResponse возвращает количество записанных документов
// и серверный timestamp последней записи.
type BatchUpsertResponse struct {
	Written         int   `json:"written"`
	ServerTimestamp int64 `json:"server_timestamp"`
}

// DeltaResponse представляет ответ на запрос изменений после cursor.
// Содержит изменённые документы, включая tombstones (Deleted=true).
type DeltaResponse struct {
	Documents       []Document `json:"documents"`
	ServerTimestamp int64      `json:"server_timestamp"`
}

// ListResponse представляет полную выборку живых документов коллекции.
type ListResponse struct {
	Documents []Document `json:"documents"`
}

// ErrorResponse представляет ошибку сервера в JSON формате.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
