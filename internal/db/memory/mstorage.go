package memory

import (
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// MStorage потокобезопасное key/value хранилище. Значения хранятся
// json-документами, по одному документу на ключ.
type MStorage struct {
	data map[string][]byte
	m    sync.RWMutex
}

func NewMemStorage() *MStorage {
	return &MStorage{
		data: make(map[string][]byte),
	}
}

func (m *MStorage) Len() int {
	m.m.RLock()
	defer m.m.RUnlock()
	return len(m.data)
}

func (m *MStorage) IsExist(key string) bool {
	m.m.RLock()
	defer m.m.RUnlock()

	_, ok := m.data[key]
	return ok
}

// SetOptions настройки записи.
type SetOptions struct {
	Overwrite bool
}

// WithOverwrite разрешает перезапись существующего ключа.
func WithOverwrite() func(*SetOptions) {
	return func(o *SetOptions) {
		o.Overwrite = true
	}
}

// Get возвращает документ по ключу.
//
// Параметры:
//   - ctx: контекст выполнения
//   - key: ключ документа
//   - m: экземпляр хранилища
//
// Возвращает:
//   - *T: найденный документ
//   - error: ErrNotFound если ключ отсутствует
func Get[T any](ctx context.Context, key string, m *MStorage) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "context error")
	}
	m.m.RLock()
	defer m.m.RUnlock()

	val, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	var result T
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
	}
	return &result, nil
}

// Set сохраняет пару ключ/значение. Ключ обязан быть уникальным,
// иначе вернется ошибка ErrDuplicateKey (если не задан WithOverwrite).
//
// Параметры:
//   - ctx: контекст выполнения
//   - key: ключ документа
//   - val: значение
//   - m: экземпляр хранилища
//   - opts: опции записи
//
// Возвращает:
//   - error: ErrDuplicateKey при попытке перезаписи без WithOverwrite
func Set[T any](ctx context.Context, key string, val *T, m *MStorage, opts ...func(*SetOptions)) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "context error")
	}

	var options SetOptions
	for _, opt := range opts {
		opt(&options)
	}

	m.m.Lock()
	defer m.m.Unlock()

	if _, ok := m.data[key]; ok && !options.Overwrite {
		return ErrDuplicateKey
	}

	bytes, err := json.Marshal(val)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal json for object `%+v`", val)
	}
	m.data[key] = bytes
	return nil
}

// Delete удаляет документ по ключу.
//
// Параметры:
//   - ctx: контекст выполнения
//   - key: ключ документа
//   - m: экземпляр хранилища
//
// Возвращает:
//   - error: ErrNotFound если ключ отсутствует
func Delete(ctx context.Context, key string, m *MStorage) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "context error")
	}
	m.m.Lock()
	defer m.m.Unlock()

	if _, ok := m.data[key]; !ok {
		return ErrNotFound
	}
	delete(m.data, key)
	return nil
}

// GetAll возвращает все документы хранилища.
//
// Параметры:
//   - ctx: контекст выполнения
//   - m: экземпляр хранилища
//
// Возвращает:
//   - []T: все документы
//   - error: ошибка десериализации
func GetAll[T any](ctx context.Context, m *MStorage) ([]T, error) {
	return FilterAll[T](ctx, m, func(T) bool { return true })
}

// FilterAll возвращает документы, для которых fn вернула true.
//
// Параметры:
//   - ctx: контекст выполнения
//   - m: экземпляр хранилища
//   - fn: предикат фильтрации
//
// Возвращает:
//   - []T: отфильтрованные документы
//   - error: ошибка десериализации
func FilterAll[T any](ctx context.Context, m *MStorage, fn func(val T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "context error")
	}
	m.m.RLock()
	defer m.m.RUnlock()

	var result = make([]T, 0, len(m.data))

	for key, bytes := range m.data {
		var val T
		if err := json.Unmarshal(bytes, &val); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
		}
		if fn(val) {
			result = append(result, val)
		}
	}
	return result, nil
}
