package models

// OpKind вид отложенной операции
type OpKind string

const (
	// OpUpsert локальное создание или изменение записи
	OpUpsert OpKind = "upsert"
	// OpDelete локальное удаление записи
	OpDelete OpKind = "delete"
)

// PendingOp представляет локальную мутацию, ожидающую доставки
// на удалённое хранилище. Payload присутствует только для upsert.
//
// Инвариант очереди: не более одной операции на id — новая мутация
// того же id замещает ранее поставленную в очередь операцию,
// delete замещает queued upsert (схлопывание до последнего
// намеренного состояния записи).
type PendingOp struct {
	ID        string    `json:"id"`
	Kind      OpKind    `json:"type"`
	Payload   *Producto `json:"payload,omitempty"`
	UpdatedAt Timestamp `json:"updatedAt"`
}
