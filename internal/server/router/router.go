package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/maynagashev/go-rangerand/internal/server/app"
	"github.com/maynagashev/go-rangerand/internal/server/handlers/json/index"
	"github.com/maynagashev/go-rangerand/internal/server/handlers/json/items"
	"github.com/maynagashev/go-rangerand/internal/server/handlers/json/named"
	jsonSample "github.com/maynagashev/go-rangerand/internal/server/handlers/json/sample"
	plainSample "github.com/maynagashev/go-rangerand/internal/server/handlers/plain/sample"
	"github.com/maynagashev/go-rangerand/internal/server/middleware/decompress"
	"github.com/maynagashev/go-rangerand/internal/server/middleware/logger"
	"github.com/maynagashev/go-rangerand/internal/server/storage"
)

// New инстанцирует новый роутер.
func New(cfg *app.Config, st storage.Repository, log *zap.Logger) chi.Router {
	compressLevel := 5
	// Один источник на весь сервер: при заданном зерне последовательность воспроизводима.
	src := cfg.NewSource()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Compress(compressLevel, "application/json", "text/plain"))
	r.Use(decompress.New(log))
	r.Use(logger.New(log)) // используем единый логгер для запросов, вместо встроенного логгера chi

	r.Get("/", index.New(st))

	r.Post("/sample", jsonSample.New(cfg, src, log))
	r.Get("/sample/{min}/{max}", plainSample.New(cfg, src))

	r.Route("/ranges/{name}", func(r chi.Router) {
		r.Put("/", named.Put(st, log))
		r.Get("/", named.Get(st))
		r.Delete("/", named.Delete(st, log))
		r.Get("/sample", named.Sample(cfg, st, src))
	})

	r.Post("/choice", items.Choice())
	r.Post("/shuffle", items.Shuffle())

	return r
}
