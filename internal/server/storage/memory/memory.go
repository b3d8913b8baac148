// Package memory provides an in-memory storage for named ranges.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/maynagashev/go-rangerand/internal/contracts/ranges"
	"github.com/maynagashev/go-rangerand/internal/server/storage"
	"github.com/maynagashev/go-rangerand/pkg/random"
)

type MemStorage struct {
	mu     sync.RWMutex
	ranges map[string]random.Range
	log    *zap.Logger
}

// New создает хранилище. Поддерживаемые опции: map[string]random.Range с начальными
// значениями и *zap.Logger.
func New(options ...interface{}) *MemStorage {
	ms := &MemStorage{
		ranges: make(map[string]random.Range),
		log:    zap.NewNop(),
	}

	for _, option := range options {
		switch opt := option.(type) {
		case map[string]random.Range:
			for name, r := range opt {
				ms.ranges[name] = r
			}
		case *zap.Logger:
			if opt != nil {
				ms.log = opt
			}
		}
	}

	return ms
}

func (ms *MemStorage) PutRange(_ context.Context, name string, r random.Range) error {
	if name == "" {
		return storage.ErrEmptyName
	}
	ms.mu.Lock()
	ms.ranges[name] = r
	ms.mu.Unlock()

	ms.log.Debug("range stored", zap.String("name", name), zap.Stringer("range", r))
	return nil
}

func (ms *MemStorage) GetRange(_ context.Context, name string) (random.Range, error) {
	ms.mu.RLock()
	r, ok := ms.ranges[name]
	ms.mu.RUnlock()

	if !ok {
		return random.Range{}, fmt.Errorf("%w: %s", storage.ErrNotFound, name)
	}
	return r, nil
}

func (ms *MemStorage) DeleteRange(_ context.Context, name string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, ok := ms.ranges[name]; !ok {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, name)
	}
	delete(ms.ranges, name)
	return nil
}

// ListRanges возвращает отсортированный по имени список диапазонов.
func (ms *MemStorage) ListRanges(_ context.Context) ([]ranges.NamedRange, error) {
	ms.mu.RLock()
	items := make([]ranges.NamedRange, 0, len(ms.ranges))
	for name, r := range ms.ranges {
		items = append(items, ranges.NamedRange{Name: name, Range: r})
	}
	ms.mu.RUnlock()

	slices.SortFunc(items, func(a, b ranges.NamedRange) int {
		return strings.Compare(a.Name, b.Name)
	})
	return items, nil
}

func (ms *MemStorage) Count(_ context.Context) int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.ranges)
}

// Close ничего не делает, т.к. хранилище в памяти не требует закрытия.
func (ms *MemStorage) Close() error {
	return nil
}
