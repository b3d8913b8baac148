// Package storage описывает хранилище именованных диапазонов.
package storage

import (
	"context"
	"errors"

	"github.com/maynagashev/go-rangerand/internal/contracts/ranges"
	"github.com/maynagashev/go-rangerand/pkg/random"
)

var (
	// ErrNotFound возвращается, если диапазон с указанным именем не найден.
	ErrNotFound = errors.New("range not found")
	// ErrEmptyName возвращается при попытке сохранить диапазон без имени.
	ErrEmptyName = errors.New("range name is empty")
)

// Repository provides an interface for working with named ranges storage.
type Repository interface {
	PutRange(ctx context.Context, name string, r random.Range) error
	GetRange(ctx context.Context, name string) (random.Range, error)
	DeleteRange(ctx context.Context, name string) error
	ListRanges(ctx context.Context) ([]ranges.NamedRange, error) // отсортированный по имени список
	Count(ctx context.Context) int
	Close() error
}
