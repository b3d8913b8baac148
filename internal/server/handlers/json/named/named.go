// Package named реализует обработчики для именованных диапазонов `/ranges/{name}`.
package named

import (
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/maynagashev/go-rangerand/internal/contracts/ranges"
	"github.com/maynagashev/go-rangerand/internal/server/app"
	"github.com/maynagashev/go-rangerand/internal/server/handlers"
	"github.com/maynagashev/go-rangerand/internal/server/storage"
	"github.com/maynagashev/go-rangerand/pkg/response"
)

// Put сохраняет диапазон под именем из пути, `PUT /ranges/{name}`.
// Тело запроса принимается в любой форме, которую понимает random.FromAny.
func Put(st storage.Repository, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			response.Error(w, err, http.StatusBadRequest)
			return
		}

		rng, err := ranges.DecodeRange(body)
		if err != nil {
			log.Debug("failed to decode range", zap.String("name", name), zap.Error(err))
			response.Fail(w, err)
			return
		}

		if err = st.PutRange(r.Context(), name, rng); err != nil {
			response.Fail(w, err)
			return
		}

		nr := ranges.NamedRange{Name: name, Range: rng}
		log.Info("range stored", zap.Stringer("range", &nr))
		response.OK(w, fmt.Sprintf("range %s stored", name))
	}
}

// Get отдает сериализованный диапазон, `GET /ranges/{name}`.
func Get(st storage.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rng, err := st.GetRange(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			response.Fail(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(rng.String()))
	}
}

// Delete удаляет диапазон, `DELETE /ranges/{name}`.
func Delete(st storage.Repository, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if err := st.DeleteRange(r.Context(), name); err != nil {
			response.Fail(w, err)
			return
		}

		log.Info("range deleted", zap.String("name", name))
		response.OK(w, fmt.Sprintf("range %s deleted", name))
	}
}

// Sample генерирует значения из сохраненного диапазона, `GET /ranges/{name}/sample?count=n`.
func Sample(cfg *app.Config, st storage.Repository, src rand.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rng, err := st.GetRange(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			response.Fail(w, err)
			return
		}

		count, err := handlers.ParseCount(r.URL.Query().Get("count"), cfg.GetMaxCount())
		if err != nil {
			response.Fail(w, err)
			return
		}

		rng = handlers.Bind(rng, src)
		response.JSON(w, ranges.SampleResponse{Range: rng, Values: rng.TakeMany(count)}, http.StatusOK)
	}
}
