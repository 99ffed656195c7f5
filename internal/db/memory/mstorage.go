package memory

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// MStorage потокобезопасное key/value хранилище. Значения хранятся сериализованными в JSON,
// поэтому наружу всегда отдаются копии.
type MStorage struct {
	data map[string][]byte
	m    sync.RWMutex
	seq  atomic.Uint64
}

func NewMemStorage() *MStorage {
	return &MStorage{
		data: make(map[string][]byte),
	}
}

// NextID выдает очередной идентификатор. Идентификаторы уникальны в пределах хранилища,
// пропуски допустимы.
func (m *MStorage) NextID() uint {
	return uint(m.seq.Add(1))
}

// Get возвращает копию значения по ключу или ErrNotFound.
func Get[T any](ctx context.Context, key string, m *MStorage) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	m.m.RLock()
	defer m.m.RUnlock()

	return decode[T](key, m.data)
}

// FilterAll возвращает все значения с ключами, начинающимися на prefix, для которых fn вернула true.
// Порядок результата не определен.
func FilterAll[T any](ctx context.Context, m *MStorage, prefix string, fn func(val T) bool) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	m.m.RLock()
	defer m.m.RUnlock()

	var result []T
	for key, raw := range m.data {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		var val T
		if err := json.Unmarshal(raw, &val); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
		}
		if fn == nil || fn(val) {
			result = append(result, val)
		}
	}
	return result, nil
}

// Update выполняет fn под эксклюзивной блокировкой хранилища. Записи, сделанные через Txn,
// применяются только если fn вернула nil, иначе отбрасываются целиком.
func (m *MStorage) Update(ctx context.Context, fn func(tx *Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	m.m.Lock()
	defer m.m.Unlock()

	tx := &Txn{
		data:    m.data,
		pending: make(map[string][]byte),
	}
	if err := fn(tx); err != nil {
		return err
	}
	for key, raw := range tx.pending {
		m.data[key] = raw
	}
	return nil
}

// Txn набор изменений внутри Update. Вне fn использовать нельзя.
type Txn struct {
	data    map[string][]byte
	pending map[string][]byte
}

// Exists учитывает как сохраненные, так и еще не примененные записи.
func (t *Txn) Exists(key string) bool {
	if _, ok := t.pending[key]; ok {
		return true
	}
	_, ok := t.data[key]
	return ok
}

func TxSet[T any](t *Txn, key string, val *T) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal json for object `%+v`", val)
	}
	t.pending[key] = raw
	return nil
}

func decode[T any](key string, data map[string][]byte) (*T, error) {
	raw, ok := data[key]
	if !ok {
		return nil, ErrNotFound
	}
	var result T
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal json by key `%s`", key)
	}
	return &result, nil
}
