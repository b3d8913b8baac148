// Package example содержит примеры использования API сервиса диапазонов.
package example

import (
	"net/http/httptest"

	"go.uber.org/zap"

	"github.com/maynagashev/go-rangerand/internal/server/app"
	"github.com/maynagashev/go-rangerand/internal/server/router"
	"github.com/maynagashev/go-rangerand/internal/server/storage/memory"
)

// NewServer запускает сервис на хранилище в памяти. Сервер нужно закрыть после использования.
func NewServer() *httptest.Server {
	cfg := &app.Config{MaxCount: 100}
	return httptest.NewServer(router.New(cfg, memory.New(), zap.NewNop()))
}
