package decompress_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/maynagashev/go-rangerand/internal/server/middleware/decompress"
)

func compress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write(data)
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

// echo возвращает обработчик, который запоминает полученное тело.
func echo(received *[]byte, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		*received = body
		w.WriteHeader(http.StatusOK)
	})
}

func TestDecompress_WithGzip(t *testing.T) {
	payload := []byte(`{"range":{"min":1,"max":6,"step":1},"count":3}`)

	req := httptest.NewRequest(http.MethodPost, "/sample", bytes.NewReader(compress(t, payload)))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	var received []byte
	var called bool
	decompress.New(zaptest.NewLogger(t))(echo(&received, &called)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, payload, received)
}

func TestDecompress_WithoutGzip(t *testing.T) {
	payload := []byte(`[0, 1]`)

	req := httptest.NewRequest(http.MethodPut, "/ranges/unit", bytes.NewReader(payload))
	rr := httptest.NewRecorder()

	var received []byte
	var called bool
	decompress.New(zaptest.NewLogger(t))(echo(&received, &called)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, payload, received)
}

func TestDecompress_InvalidGzip(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/sample", bytes.NewReader([]byte("not gzip")))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	var received []byte
	var called bool
	decompress.New(zaptest.NewLogger(t))(echo(&received, &called)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, called)
	assert.Contains(t, rr.Body.String(), "invalid gzip body")
}

func TestDecompress_BodyTooLarge(t *testing.T) {
	payload := bytes.Repeat([]byte("0"), decompress.MaxBodySize+1)

	req := httptest.NewRequest(http.MethodPost, "/shuffle", bytes.NewReader(compress(t, payload)))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	var received []byte
	var called bool
	decompress.New(zaptest.NewLogger(t))(echo(&received, &called)).ServeHTTP(rr, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}
