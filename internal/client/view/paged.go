// Package view реализует постраничное реактивное представление поверх
// живого потока записей. Представление не обращается к хранилищу:
// фильтр, сортировка и страница пересчитываются в памяти при каждом
// изменении любого из входов.
package view

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Direction — направление сортировки.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// DefaultPageSize применяется, если размер страницы не задан.
const DefaultPageSize = 10

// Options настраивает PagedSource.
type Options[T any, F any] struct {
	// FilterFunc возвращает true, если запись проходит фильтр.
	// Если nil — фильтр игнорируется и все записи проходят.
	FilterFunc func(item T, filter F) bool

	// SortFunc — пользовательский компаратор. Если nil, используется
	// компаратор по умолчанию: поле с json-тегом, равным ключу
	// сортировки, числа сравниваются численно, остальное — как строки
	// в нижнем регистре.
	SortFunc func(a, b T, key string, dir Direction) int

	// InitialPageSize — размер страницы при старте.
	InitialPageSize int
}

// PagedSource держит последний снимок потока записей и четыре входа
// (данные, фильтр, сортировка, страница). Любое изменение пересчитывает
// видимый срез и публикует его подписчику вместе с общим количеством
// отфильтрованных записей.
type PagedSource[T any, F any] struct {
	opts   Options[T, F]
	source <-chan []T

	mu           sync.Mutex
	data         []T
	filter       F
	hasFilter    bool
	sortKey      string
	sortDir      Direction
	pageIndex    int
	pageSize     int
	total        int
	out          chan []T
	stop         chan struct{}
	connected    bool
	disconnected bool
}

// NewPagedSource создает представление поверх потока записей.
// Поток обычно приходит из подписки на движок синхронизации.
func NewPagedSource[T any, F any](source <-chan []T, opts Options[T, F]) *PagedSource[T, F] {
	pageSize := opts.InitialPageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &PagedSource[T, F]{
		opts:     opts,
		source:   source,
		sortDir:  Asc,
		pageSize: pageSize,
		out:      make(chan []T, 1),
		stop:     make(chan struct{}),
	}
}

// Connect запускает подписку на поток записей и возвращает поток
// видимых страниц. Повторный вызов возвращает тот же канал.
func (p *PagedSource[T, F]) Connect() <-chan []T {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.connected || p.disconnected {
		return p.out
	}
	p.connected = true

	go p.consume()

	return p.out
}

// Disconnect останавливает подписку и закрывает поток страниц.
// После отключения сеттеры не имеют наблюдаемого эффекта.
func (p *PagedSource[T, F]) Disconnect() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disconnected {
		return
	}
	p.disconnected = true
	close(p.stop)
	close(p.out)
}

// SetFilter заменяет значение фильтра и пересчитывает страницу.
// Индекс страницы намеренно не сбрасывается: это ответственность
// вызывающего.
func (p *PagedSource[T, F]) SetFilter(filter F) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disconnected {
		return
	}
	p.filter = filter
	p.hasFilter = true
	p.recomputeLocked()
}

// ClearFilter сбрасывает фильтр: все записи снова проходят.
func (p *PagedSource[T, F]) ClearFilter() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disconnected {
		return
	}
	var zero F
	p.filter = zero
	p.hasFilter = false
	p.recomputeLocked()
}

// SetSort устанавливает активный ключ и направление сортировки.
// Пустой ключ отключает сортировку (сохраняется порядок источника).
func (p *PagedSource[T, F]) SetSort(key string, dir Direction) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disconnected {
		return
	}
	p.sortKey = key
	if dir != Desc {
		dir = Asc
	}
	p.sortDir = dir
	p.recomputeLocked()
}

// SetPage устанавливает индекс и размер страницы.
func (p *PagedSource[T, F]) SetPage(index, size int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disconnected {
		return
	}
	if index < 0 {
		index = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	p.pageIndex = index
	p.pageSize = size
	p.recomputeLocked()
}

// Total возвращает количество записей после фильтра (до нарезки на
// страницы). Обновляется при каждом пересчете.
func (p *PagedSource[T, F]) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

// consume читает снимки из потока записей до отключения
func (p *PagedSource[T, F]) consume() {
	for {
		select {
		case <-p.stop:
			return
		case data, ok := <-p.source:
			if !ok {
				return
			}
			p.mu.Lock()
			if p.disconnected {
				p.mu.Unlock()
				return
			}
			p.data = data
			p.recomputeLocked()
			p.mu.Unlock()
		}
	}
}

// recomputeLocked выполняет конвейер фильтр → сортировка → срез и
// публикует результат. Вызывается под p.mu.
func (p *PagedSource[T, F]) recomputeLocked() {
	// 1) фильтр
	filtered := p.data
	if p.hasFilter && p.opts.FilterFunc != nil {
		filtered = make([]T, 0, len(p.data))
		for _, item := range p.data {
			if p.opts.FilterFunc(item, p.filter) {
				filtered = append(filtered, item)
			}
		}
	}

	// Общее количество — до нарезки, чтобы пагинатор знал границы
	p.total = len(filtered)

	// 2) сортировка
	sorted := filtered
	if p.sortKey != "" {
		sorted = append([]T(nil), filtered...)
		stableSort(sorted, func(a, b T) int {
			if p.opts.SortFunc != nil {
				return p.opts.SortFunc(a, b, p.sortKey, p.sortDir)
			}
			return defaultCompare(a, b, p.sortKey, p.sortDir)
		})
	}

	// 3) срез страницы; страница за пределами дает пустой срез
	start := p.pageIndex * p.pageSize
	end := start + p.pageSize
	if start > len(sorted) {
		start = len(sorted)
	}
	if end > len(sorted) {
		end = len(sorted)
	}
	page := sorted[start:end]

	// Устаревшее значение вытесняется свежим
	select {
	case <-p.out:
	default:
	}
	select {
	case p.out <- page:
	default:
	}
}

func stableSort[T any](list []T, cmp func(a, b T) int) {
	// Сортировка вставками: стабильна и достаточна для размеров
	// локального каталога
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && cmp(list[j-1], list[j]) > 0; j-- {
			list[j-1], list[j] = list[j], list[j-1]
		}
	}
}

// defaultCompare сравнивает записи по полю, чей json-тег равен key.
// Числа сравниваются численно, остальные значения — лексикографически
// в нижнем регистре.
func defaultCompare[T any](a, b T, key string, dir Direction) int {
	va, okA := fieldByJSONTag(reflect.ValueOf(a), key)
	vb, okB := fieldByJSONTag(reflect.ValueOf(b), key)

	var cmp int
	switch {
	case !okA || !okB:
		cmp = 0
	case isNumeric(va) && isNumeric(vb):
		na, nb := asFloat(va), asFloat(vb)
		switch {
		case na < nb:
			cmp = -1
		case na > nb:
			cmp = 1
		}
	default:
		sa := strings.ToLower(fmt.Sprint(va.Interface()))
		sb := strings.ToLower(fmt.Sprint(vb.Interface()))
		cmp = strings.Compare(sa, sb)
	}

	if dir == Desc {
		return -cmp
	}
	return cmp
}

func fieldByJSONTag(v reflect.Value, key string) (reflect.Value, bool) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if tag == key || (tag == "" && field.Name == key) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func isNumeric(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func asFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}
