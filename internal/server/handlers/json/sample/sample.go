// Package sample реализует генерацию значений по диапазону из тела запроса `POST /sample`.
package sample

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"

	"go.uber.org/zap"

	"github.com/maynagashev/go-rangerand/internal/contracts/ranges"
	"github.com/maynagashev/go-rangerand/internal/server/app"
	"github.com/maynagashev/go-rangerand/internal/server/handlers"
	"github.com/maynagashev/go-rangerand/pkg/random"
	"github.com/maynagashev/go-rangerand/pkg/response"
)

// New возвращает http.HandlerFunc, который генерирует значения из переданного диапазона.
func New(cfg *app.Config, src rand.Source, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ranges.SampleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Debug("failed to decode sample request", zap.Error(err))
			response.Fail(w, fmt.Errorf("%w: %w", random.ErrParse, err))
			return
		}

		rng, err := req.Decode()
		if err != nil {
			response.Fail(w, err)
			return
		}

		count, err := handlers.CheckCount(req.Count, cfg.GetMaxCount())
		if err != nil {
			response.Fail(w, err)
			return
		}

		rng = handlers.Bind(rng, src)
		log.Debug("sampling range", zap.Stringer("range", rng), zap.Int("count", count))

		response.JSON(w, ranges.SampleResponse{Range: rng, Values: rng.TakeMany(count)}, http.StatusOK)
	}
}
