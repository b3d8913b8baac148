package sample_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maynagashev/go-rangerand/internal/server/app"
	"github.com/maynagashev/go-rangerand/internal/server/handlers/plain/sample"
)

func newRouter(cfg *app.Config) chi.Router {
	r := chi.NewRouter()
	r.Get("/sample/{min}/{max}", sample.New(cfg, nil))
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func parseLines(t *testing.T, body string) []float64 {
	t.Helper()
	var values []float64
	for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
		v, err := strconv.ParseFloat(line, 64)
		require.NoError(t, err)
		values = append(values, v)
	}
	return values
}

func TestPlainSample(t *testing.T) {
	h := newRouter(&app.Config{MaxCount: 100})

	rr := get(t, h, "/sample/6/1?step=1&count=50")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))

	values := parseLines(t, rr.Body.String())
	require.Len(t, values, 50)
	for _, v := range values {
		assert.Contains(t, []float64{1, 2, 3, 4, 5, 6}, v)
	}
}

func TestPlainSample_StrictPrecision(t *testing.T) {
	h := newRouter(&app.Config{MaxCount: 100})

	rr := get(t, h, "/sample/0/1?step=0.1&usfpp=true&count=100")
	require.Equal(t, http.StatusOK, rr.Code)

	for _, line := range strings.Split(strings.TrimSpace(rr.Body.String()), "\n") {
		assert.LessOrEqual(t, len(line), len("0.1"), "value %s is not rounded", line)
	}
}

func TestPlainSample_DefaultCount(t *testing.T) {
	h := newRouter(&app.Config{MaxCount: 100})

	rr := get(t, h, "/sample/-1/1")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, parseLines(t, rr.Body.String()), 1)
}

func TestPlainSample_BadRequest(t *testing.T) {
	h := newRouter(&app.Config{MaxCount: 10})

	targets := []string{
		"/sample/a/1",
		"/sample/0/b",
		"/sample/0/NaN",
		"/sample/0/1?step=x",
		"/sample/0/1?usfpp=maybe",
		"/sample/0/1?count=11",
		"/sample/0/1?count=zero",
	}

	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			rr := get(t, h, target)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}
