// Package sample реализует текстовый эндпоинт `GET /sample/{min}/{max}`.
package sample

import (
	"fmt"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/maynagashev/go-rangerand/internal/server/app"
	"github.com/maynagashev/go-rangerand/internal/server/handlers"
	"github.com/maynagashev/go-rangerand/pkg/random"
)

// New возвращает значения диапазона в виде текста, по одному на строку.
// Параметры запроса: step, usfpp, count.
func New(cfg *app.Config, src rand.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rng, err := parseRange(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		count, err := handlers.ParseCount(r.URL.Query().Get("count"), cfg.GetMaxCount())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var sb strings.Builder
		for _, v := range handlers.Bind(rng, src).TakeMany(count) {
			sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
			sb.WriteByte('\n')
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(sb.String()))
	}
}

func parseRange(r *http.Request) (random.Range, error) {
	lo, err := parseFloat("min", chi.URLParam(r, "min"))
	if err != nil {
		return random.Range{}, err
	}
	hi, err := parseFloat("max", chi.URLParam(r, "max"))
	if err != nil {
		return random.Range{}, err
	}

	query := r.URL.Query()
	var opts []random.Option
	if raw := query.Get("step"); raw != "" {
		step, stepErr := parseFloat("step", raw)
		if stepErr != nil {
			return random.Range{}, stepErr
		}
		opts = append(opts, random.WithStep(step))
	}
	if raw := query.Get("usfpp"); raw != "" {
		strict, boolErr := strconv.ParseBool(raw)
		if boolErr != nil {
			return random.Range{}, fmt.Errorf("invalid usfpp %q, must be a boolean", raw)
		}
		opts = append(opts, random.WithStrictPrecision(strict))
	}

	return random.New(lo, hi, opts...), nil
}

func parseFloat(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s %q, must be convertable to float64", name, raw)
	}
	return v, nil
}
