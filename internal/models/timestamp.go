package models

import (
	"encoding/json"
	"time"
)

// Timestamp — логический timestamp записи (epoch миллисекунды).
// Единственная основа для разрешения конфликтов между конкурирующими
// записями одного id: большее значение побеждает.
//
// Источники данных исторически хранят это поле в разных формах:
// серверный маркер вида {"seconds":..,"nanos":..}, число (ms),
// legacy-строка с датой или вовсе отсутствие значения. Все формы
// нормализуются в int64 на границе чтения (UnmarshalJSON); остальной
// код видит только целые миллисекунды.
type Timestamp int64

// serverMarker — серверная форма timestamp (Firestore-подобный маркер).
type serverMarker struct {
	Seconds int64 `json:"seconds"`
	Nanos   int64 `json:"nanos"`
}

// legacyLayouts — форматы строковых дат, встречающиеся в старых кэшах.
var legacyLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Now возвращает текущее время как Timestamp.
func Now() Timestamp {
	return Timestamp(time.Now().UnixMilli())
}

// Millis возвращает значение в миллисекундах epoch.
func (t Timestamp) Millis() int64 {
	return int64(t)
}

// Time возвращает значение как time.Time.
func (t Timestamp) Time() time.Time {
	return time.UnixMilli(int64(t))
}

// UnmarshalJSON нормализует гетерогенные представления timestamp.
// Неразборчивые значения схлопываются в "сейчас" — запись при этом
// остаётся валидной и выигрывает следующий LWW-merge, что повторяет
// поведение исходной системы.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	// null / отсутствие значения
	if string(data) == "null" {
		*t = Now()
		return nil
	}

	// Число — уже миллисекунды
	var ms int64
	if err := json.Unmarshal(data, &ms); err == nil {
		*t = Timestamp(ms)
		return nil
	}

	// Строка — legacy формат даты
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		for _, layout := range legacyLayouts {
			if parsed, perr := time.Parse(layout, s); perr == nil {
				*t = Timestamp(parsed.UnixMilli())
				return nil
			}
		}
		*t = Now()
		return nil
	}

	// Серверный маркер {"seconds":..,"nanos":..}
	var m serverMarker
	if err := json.Unmarshal(data, &m); err == nil && m.Seconds != 0 {
		*t = Timestamp(m.Seconds*1000 + m.Nanos/int64(time.Millisecond))
		return nil
	}

	*t = Now()
	return nil
}
